package briefs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(org string) CreateBriefRequest {
	return CreateBriefRequest{
		FullName:        "Dr. Arju",
		Organization:    org,
		Email:           "director@gph.gov.np",
		ProjectLocation: "Nepal",
		PrimaryInterest: "Enterprise EMR Deployment",
		ExistingSystems: []string{"OpenMRS", "", "DHIS2"},
		HL7FHIR:         true,
		TechnicalBrief:  "Migrate two facilities onto a shared EMR.",
	}
}

// returns a repository whose clock advances one minute per call
func newSteppedRepository() *MemoryRepository {
	repo := NewMemoryRepository()
	base := time.Date(2026, 1, 19, 8, 30, 0, 0, time.UTC)
	step := 0

	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	return repo
}

func TestMemoryRepository_Create(t *testing.T) {
	repo := NewMemoryRepository()

	brief, err := repo.Create(context.Background(), newTestRequest("Gandaki Province Hospital"))

	require.NoError(t, err)
	assert.Len(t, brief.ID, 36)
	assert.Equal(t, StatusNew, brief.Status)
	assert.Equal(t, []string{"OpenMRS", "DHIS2"}, brief.ExistingSystems)
	assert.True(t, brief.HL7FHIR)
	assert.False(t, brief.NepalDirective2081)
	assert.False(t, brief.CreatedAt.IsZero())
	assert.Equal(t, brief.CreatedAt, brief.UpdatedAt)
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestRequest("Lumbini Zone Lab"))
	require.NoError(t, err)

	created.ExistingSystems[0] = "mutated"
	created.Status = StatusArchived

	got, err := repo.Get(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "OpenMRS", got.ExistingSystems[0])
	assert.Equal(t, StatusNew, got.Status)
}

func TestMemoryRepository_GetNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), "3f2b8c1e-9d4a-4e5f-8a6b-7c8d9e0f1a2b")

	assert.True(t, IsNotFound(err))
}

func TestMemoryRepository_EmptySystemsNeverNil(t *testing.T) {
	repo := NewMemoryRepository()
	req := newTestRequest("Ministry of Health")
	req.ExistingSystems = nil

	brief, err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, brief.ExistingSystems)
	assert.Empty(t, brief.ExistingSystems)
}

func TestMemoryRepository_ListNewestFirstWithPaging(t *testing.T) {
	repo := newSteppedRepository()
	ctx := context.Background()

	var ids []string
	for _, org := range []string{"first", "second", "third"} {
		b, err := repo.Create(ctx, newTestRequest(org))
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	all, total, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Organization)
	assert.Equal(t, "first", all[2].Organization)

	page, total, err := repo.List(ctx, ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)

	beyond, total, err := repo.List(ctx, ListFilter{Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, beyond)
}

func TestMemoryRepository_ListFiltersByStatus(t *testing.T) {
	repo := newSteppedRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, newTestRequest("a"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestRequest("b"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, a.ID, StatusReviewing)
	require.NoError(t, err)

	reviewing, total, err := repo.List(ctx, ListFilter{Status: StatusReviewing})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, reviewing, 1)
	assert.Equal(t, a.ID, reviewing[0].ID)

	archived, total, err := repo.List(ctx, ListFilter{Status: StatusArchived})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, archived)
}

func TestMemoryRepository_UpdateStatus(t *testing.T) {
	repo := newSteppedRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestRequest("a"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// any status may follow any other
	updated, err = repo.UpdateStatus(ctx, created.ID, StatusNew)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, updated.Status)

	_, err = repo.UpdateStatus(ctx, created.ID, Status("DONE"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = repo.UpdateStatus(ctx, "3f2b8c1e-9d4a-4e5f-8a6b-7c8d9e0f1a2b", StatusNew)
	assert.ErrorIs(t, err, ErrBriefNotFound)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, newTestRequest("concurrent"))
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	_, total, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}

func TestParseStatusFilter(t *testing.T) {
	status, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, Status(""), status)

	status, err = ParseStatusFilter("REVIEWING")
	require.NoError(t, err)
	assert.Equal(t, StatusReviewing, status)

	_, err = ParseStatusFilter("reviewing")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
