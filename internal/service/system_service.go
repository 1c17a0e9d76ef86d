package service

import (
	"context"
	"log"
	"runtime"
	"time"

	"travlr/internal/database"
	"travlr/internal/models"
)

// HealthDB is the slice of the database layer the health check needs.
type HealthDB interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (*database.Stats, error)
}

// SystemService reports process and dependency health.
type SystemService struct {
	db        HealthDB
	startedAt time.Time
	now       func() time.Time
}

// NewSystemService creates a new SystemService.
func NewSystemService(db HealthDB) *SystemService {
	return &SystemService{
		db:        db,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

// Health returns the current health snapshot. The report is degraded when the
// database is unreachable; a failing dbStats alone only drops the statistics.
func (s *SystemService) Health(ctx context.Context) *models.HealthResponse {
	now := s.now()

	resp := &models.HealthResponse{
		Status:        models.StatusHealthy,
		Timestamp:     now,
		UptimeSeconds: now.Sub(s.startedAt).Seconds(),
		Database:      models.DatabaseHealth{Status: "connected"},
	}

	if err := s.db.Ping(ctx); err != nil {
		log.Printf("Health check database ping failed: %v", err)
		resp.Status = models.StatusDegraded
		resp.Database.Status = "disconnected"
	} else if stats, err := s.db.Stats(ctx); err == nil {
		resp.Database.Stats = stats
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	resp.Memory = models.MemoryHealth{
		AllocMB:      toMB(mem.Alloc),
		TotalAllocMB: toMB(mem.TotalAlloc),
		SysMB:        toMB(mem.Sys),
		NumGC:        mem.NumGC,
	}

	return resp
}

func toMB(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
