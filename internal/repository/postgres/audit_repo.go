package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dispatch-board/internal/domain"
	repoInterface "dispatch-board/internal/repository/interface"
)

// LoadAuditRepository - PostgreSQL implementation of the load audit trail.
type LoadAuditRepository struct {
	db *sqlx.DB
}

func NewLoadAuditRepository(db *sqlx.DB) repoInterface.LoadAuditRepository {
	return &LoadAuditRepository{db: db}
}

// CreateLoadAudit inserts one audit row and fills in the generated id and
// timestamp.
func (r *LoadAuditRepository) CreateLoadAudit(ctx context.Context, audit *domain.LoadAudit) error {
	query := `
        INSERT INTO load_audits (cause, status, error, dispatch_count, reallocation_count, schedule_count, duration_ms, loaded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING id, loaded_at
    `

	row := r.db.QueryRowContext(ctx, query,
		audit.Cause,
		audit.Status,
		audit.Error,
		audit.DispatchCount,
		audit.ReallocationCount,
		audit.ScheduleCount,
		audit.DurationMS,
	)

	return row.Scan(&audit.ID, &audit.LoadedAt)
}

// GetLoadAudits returns the most recent audit rows, newest first.
func (r *LoadAuditRepository) GetLoadAudits(ctx context.Context, limit int) ([]*domain.LoadAudit, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
        SELECT id, cause, status, error, dispatch_count, reallocation_count, schedule_count, duration_ms, loaded_at
        FROM load_audits
        ORDER BY loaded_at DESC
        LIMIT $1
    `

	var audits []*domain.LoadAudit
	if err := r.db.SelectContext(ctx, &audits, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list load audits: %w", err)
	}
	return audits, nil
}

// GetLoadStats aggregates the audit trail.
func (r *LoadAuditRepository) GetLoadStats(ctx context.Context) (*domain.LoadStats, error) {
	query := `
        SELECT
            COUNT(*) AS total_loads,
            COUNT(*) FILTER (WHERE status = 'error') AS failed,
            COALESCE(AVG(duration_ms), 0) AS avg_duration_ms
        FROM load_audits
    `

	var stats domain.LoadStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate load audits: %w", err)
	}
	return &stats, nil
}
