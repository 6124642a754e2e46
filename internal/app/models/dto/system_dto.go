package dto

import (
	"time"

	"github.com/okandemir/profwhere/internal/app/timetable"
)

// ReloadResponse reports the outcome of a re-ingest run.
type ReloadResponse struct {
	RunID       string                `json:"run_id" example:"7f9c71c2-9df3-4d3e-94a1-2a6ea1a7c010"`
	Diagnostics timetable.Diagnostics `json:"diagnostics"`
	LastUpdated time.Time             `json:"last_updated"`
}

// HealthResponse reports service liveness and dataset freshness.
type HealthResponse struct {
	Status      string     `json:"status" example:"ok"`
	Professors  int        `json:"professors" example:"412"`
	Courses     int        `json:"courses" example:"1287"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}
