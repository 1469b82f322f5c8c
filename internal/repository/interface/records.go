package _interface

import (
	"context"

	"dispatch-board/internal/domain"
)

// RecordSource - read access to the three raw collections in the upstream
// store. The schema is opaque; records come back untyped.
type RecordSource interface {
	FetchReallocationData(ctx context.Context) ([]domain.RawRecord, error)
	FetchDispatchData(ctx context.Context) ([]domain.RawRecord, error)
	FetchScheduleData(ctx context.Context) ([]domain.RawRecord, error)
}

// LoadAuditRepository - persistence for the load audit trail.
type LoadAuditRepository interface {
	CreateLoadAudit(ctx context.Context, audit *domain.LoadAudit) error
	GetLoadAudits(ctx context.Context, limit int) ([]*domain.LoadAudit, error)
	GetLoadStats(ctx context.Context) (*domain.LoadStats, error)
}
