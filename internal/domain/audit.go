package domain

import "time"

// Load causes recorded in the audit trail.
const (
	LoadCauseInitial = "initial"
	LoadCauseRefresh = "refresh"
)

// LoadAudit - one row per load/refresh attempt against the upstream store.
type LoadAudit struct {
	ID                int64     `db:"id" json:"id"`
	Cause             string    `db:"cause" json:"cause"`
	Status            string    `db:"status" json:"status"`
	Error             string    `db:"error" json:"error,omitempty"`
	DispatchCount     int       `db:"dispatch_count" json:"dispatch_count"`
	ReallocationCount int       `db:"reallocation_count" json:"reallocation_count"`
	ScheduleCount     int       `db:"schedule_count" json:"schedule_count"`
	DurationMS        int       `db:"duration_ms" json:"duration_ms"`
	LoadedAt          time.Time `db:"loaded_at" json:"loaded_at"`
}

// LoadStats - aggregate view over the audit trail.
type LoadStats struct {
	TotalLoads    int     `db:"total_loads" json:"total_loads"`
	Failed        int     `db:"failed" json:"failed"`
	AvgDurationMS float64 `db:"avg_duration_ms" json:"avg_duration_ms"`
}
