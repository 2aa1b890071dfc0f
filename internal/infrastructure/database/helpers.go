package database

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/pkg/logger"
)

// Ping is used by the health endpoint.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close is idempotent.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	stats := db.Stats()
	db.Pool.Close()
	db.Pool = nil

	logger.Info("[DATABASE] Connection pool closed", map[string]interface{}{
		"total_acquires": stats.AcquireCount,
		"new_conns":      stats.NewConnsCount,
	})
	return nil
}

// PoolStats is a snapshot of the connection pool.
type PoolStats struct {
	AcquireCount    int64
	AcquireDuration time.Duration
	AcquiredConns   int32
	IdleConns       int32
	MaxConns        int32
	TotalConns      int32
	NewConnsCount   int64
}

func (db *PostgresDB) Stats() PoolStats {
	if db.Pool == nil {
		return PoolStats{}
	}
	s := db.Pool.Stat()
	return PoolStats{
		AcquireCount:    s.AcquireCount(),
		AcquireDuration: s.AcquireDuration(),
		AcquiredConns:   s.AcquiredConns(),
		IdleConns:       s.IdleConns(),
		MaxConns:        s.MaxConns(),
		TotalConns:      s.TotalConns(),
		NewConnsCount:   s.NewConnsCount(),
	}
}
