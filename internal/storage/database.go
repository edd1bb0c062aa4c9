package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"HealthyHabits/internal/config"
)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"age" INTEGER NOT NULL,
			"gender" TEXT NOT NULL,
			"conditions" TEXT NOT NULL DEFAULT '',
			"goal" TEXT NOT NULL,
			"created_at" TEXT NOT NULL
	);`

// Store is the append-only profile table.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Store)

// WithClock replaces the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open connects to the SQLite file named in cfg and makes sure the table exists.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// sqlite는 단일 writer - 커넥션 하나로 쓰기를 직렬화
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createUsersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to create users table: %w", err)
	}

	s := &Store{
		db:     db,
		path:   cfg.Path,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	logger.Info("profile store ready", zap.String("path", cfg.Path))
	return s, nil
}

// Health reports database status for the health endpoint.
func (s *Store) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := map[string]string{"path": s.path}
	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		s.logger.Warn("database ping failed", zap.Error(err))
		return stats
	}

	stats["status"] = "up"
	if n, err := s.Count(ctx); err == nil {
		stats["profiles"] = strconv.Itoa(n)
	}
	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	return stats
}

func (s *Store) Close() error {
	s.logger.Info("closing profile store", zap.String("path", s.path))
	return s.db.Close()
}
