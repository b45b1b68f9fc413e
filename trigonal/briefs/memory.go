package briefs

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository implements Repository in process memory
type MemoryRepository struct {
	mu     sync.RWMutex
	briefs map[string]*Brief
	now    func() time.Time
}

// creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		briefs: make(map[string]*Brief),
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, req CreateBriefRequest) (*Brief, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()

	brief := &Brief{
		ID:                 uuid.NewString(),
		FullName:           req.FullName,
		Organization:       req.Organization,
		Email:              req.Email,
		ProjectLocation:    req.ProjectLocation,
		PrimaryInterest:    req.PrimaryInterest,
		ExistingSystems:    normalizeSystems(req.ExistingSystems),
		NepalDirective2081: req.NepalDirective2081,
		HL7FHIR:            req.HL7FHIR,
		TechnicalBrief:     req.TechnicalBrief,
		Status:             StatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	r.briefs[brief.ID] = brief

	out := brief.clone()
	return &out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Brief, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brief, ok := r.briefs[id]
	if !ok {
		return nil, ErrBriefNotFound
	}

	out := brief.clone()
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context, filter ListFilter) ([]Brief, int, error) {
	r.mu.RLock()

	matched := make([]Brief, 0, len(r.briefs))

	for _, brief := range r.briefs {
		if filter.Status != "" && brief.Status != filter.Status {
			continue
		}

		matched = append(matched, brief.clone())
	}

	r.mu.RUnlock()

	// newest first, id as tiebreaker so pages are stable
	slices.SortFunc(matched, func(a, b Brief) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := total

	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	return matched[start:end], total, nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status Status) (*Brief, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	brief, ok := r.briefs[id]
	if !ok {
		return nil, ErrBriefNotFound
	}

	brief.Status = status
	brief.UpdatedAt = r.now().UTC()

	out := brief.clone()
	return &out, nil
}
