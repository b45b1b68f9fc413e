package briefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// effectively unbounded page for List calls without a limit
const maxListLimit = 10000

// PostgresRepository implements Repository on a pgx pool
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req CreateBriefRequest) (*Brief, error) {
	row := r.db.QueryRow(
		ctx,
		queryCreate,
		req.FullName,
		req.Organization,
		req.Email,
		req.ProjectLocation,
		req.PrimaryInterest,
		normalizeSystems(req.ExistingSystems),
		req.NepalDirective2081,
		req.HL7FHIR,
		req.TechnicalBrief,
	)

	brief, err := scanBrief(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert brief: %w", err)
	}

	return brief, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Brief, error) {
	brief, err := scanBrief(r.db.QueryRow(ctx, queryGet, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBriefNotFound
		}

		return nil, fmt.Errorf("failed to get brief: %w", err)
	}

	return brief, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]Brief, int, error) {
	countSQL, countArgs, err := buildCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count briefs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = maxListLimit
	}

	listSQL, listArgs, err := buildListQuery(filter, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list briefs: %w", err)
	}

	defer rows.Close()

	list := make([]Brief, 0)

	for rows.Next() {
		brief, err := scanBrief(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan brief: %w", err)
		}

		list = append(list, *brief)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate briefs: %w", err)
	}

	return list, total, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Brief, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	brief, err := scanBrief(r.db.QueryRow(ctx, queryUpdateStatus, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBriefNotFound
		}

		return nil, fmt.Errorf("failed to update brief status: %w", err)
	}

	return brief, nil
}

func scanBrief(row pgx.Row) (*Brief, error) {
	var b Brief
	var status string

	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Organization,
		&b.Email,
		&b.ProjectLocation,
		&b.PrimaryInterest,
		&b.ExistingSystems,
		&b.NepalDirective2081,
		&b.HL7FHIR,
		&b.TechnicalBrief,
		&status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	b.Status = Status(status)

	if b.ExistingSystems == nil {
		b.ExistingSystems = []string{}
	}

	return &b, nil
}
