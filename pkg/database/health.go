package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the pool snapshot nested under "database" in GET /health.
// Field names follow the camelCase convention of the rest of the wire surface.
type HealthStatus struct {
	Status    string `json:"status"`
	PingMs    int64  `json:"pingMs"`
	OpenConns int    `json:"openConns"`
	InUse     int    `json:"inUse"`
	Idle      int    `json:"idle"`
	WaitCount int64  `json:"waitCount"`
	WaitMs    int64  `json:"waitMs"`
	PoolSize  int    `json:"poolSize"`
}

// Health pings the database and snapshots its connection pool. A failed ping
// still returns a status carrying the ping latency alongside the error.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: "unhealthy",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:    "healthy",
		PingMs:    time.Since(start).Milliseconds(),
		OpenConns: stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		WaitCount: stats.WaitCount,
		WaitMs:    stats.WaitDuration.Milliseconds(),
		PoolSize:  stats.MaxOpenConnections,
	}, nil
}
