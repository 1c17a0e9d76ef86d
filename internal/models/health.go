package models

import (
	"time"

	"travlr/internal/database"
)

// Health statuses.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// DatabaseHealth reports connectivity and storage statistics.
type DatabaseHealth struct {
	Status string          `json:"status" example:"connected"`
	Stats  *database.Stats `json:"stats,omitempty"`
}

// MemoryHealth is a snapshot of process memory usage in megabytes.
type MemoryHealth struct {
	AllocMB      float64 `json:"allocMB" example:"12.4"`
	TotalAllocMB float64 `json:"totalAllocMB" example:"84.1"`
	SysMB        float64 `json:"sysMB" example:"71.3"`
	NumGC        uint32  `json:"numGC" example:"9"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status        string         `json:"status" example:"healthy"`
	Timestamp     time.Time      `json:"timestamp"`
	UptimeSeconds float64        `json:"uptimeSeconds" example:"3600.5"`
	Database      DatabaseHealth `json:"database"`
	Memory        MemoryHealth   `json:"memory"`
}
