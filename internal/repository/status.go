package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/leads-outreach/api/internal/entity"
)

// ErrStatusKeyRequired is returned when a status write carries no company key.
var ErrStatusKeyRequired = errors.New("company key is required")

// StatusRepository persists per-company outreach status.
type StatusRepository interface {
	FindByKeys(ctx context.Context, keys []string) ([]entity.OutreachStatus, error)
	Upsert(ctx context.Context, status *entity.OutreachStatus) (*entity.OutreachStatus, error)
}

// PGXStatusRepository implements StatusRepository using pgx.
type PGXStatusRepository struct {
	pool pgxPool
}

// NewPGXStatusRepository wires a pgx backed repository.
func NewPGXStatusRepository(pool *pgxpool.Pool) *PGXStatusRepository {
	return &PGXStatusRepository{pool: pool}
}

// FindByKeys returns the status rows for the given company keys.
func (r *PGXStatusRepository) FindByKeys(ctx context.Context, keys []string) ([]entity.OutreachStatus, error) {
	if len(keys) == 0 {
		return []entity.OutreachStatus{}, nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT company_key, contacted, contacted_by, contacted_at
        FROM company_outreach_status
        WHERE company_key = ANY($1)
    `, keys)
	if err != nil {
		return nil, fmt.Errorf("find outreach status: %w", err)
	}
	defer rows.Close()

	statuses := make([]entity.OutreachStatus, 0, len(keys))
	for rows.Next() {
		var (
			status      entity.OutreachStatus
			contactedBy sql.NullString
			contactedAt sql.NullTime
		)
		if err := rows.Scan(&status.CompanyKey, &status.Contacted, &contactedBy, &contactedAt); err != nil {
			return nil, fmt.Errorf("scan outreach status: %w", err)
		}
		status.ContactedBy = nullStringToPtr(contactedBy)
		status.ContactedAt = nullTimeToPtr(contactedAt)
		statuses = append(statuses, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outreach status: %w", err)
	}
	return statuses, nil
}

const upsertStatusSQL = `
        INSERT INTO company_outreach_status (company_key, contacted, contacted_by, contacted_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (company_key) DO UPDATE SET
            contacted = EXCLUDED.contacted,
            contacted_by = EXCLUDED.contacted_by,
            contacted_at = EXCLUDED.contacted_at
        RETURNING company_key, contacted, contacted_by, contacted_at;
    `

// Upsert creates or replaces the status row keyed by company key and returns
// the persisted values.
func (r *PGXStatusRepository) Upsert(ctx context.Context, status *entity.OutreachStatus) (*entity.OutreachStatus, error) {
	if status == nil {
		return nil, fmt.Errorf("status payload is nil")
	}
	if status.CompanyKey == "" {
		return nil, ErrStatusKeyRequired
	}

	var (
		saved       entity.OutreachStatus
		contactedBy sql.NullString
		contactedAt sql.NullTime
	)
	err := r.pool.QueryRow(ctx, upsertStatusSQL,
		status.CompanyKey,
		status.Contacted,
		stringOrNil(status.ContactedBy),
		timeOrNil(status.ContactedAt),
	).Scan(&saved.CompanyKey, &saved.Contacted, &contactedBy, &contactedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert outreach status: %w", err)
	}
	saved.ContactedBy = nullStringToPtr(contactedBy)
	saved.ContactedAt = nullTimeToPtr(contactedAt)
	return &saved, nil
}
