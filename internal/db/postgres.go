package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"github.com/yigit/campus-survey/internal/app/migrations"
	"github.com/yigit/campus-survey/internal/config"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// PostgresDB database connection structure. Documents are kept as JSONB rows.
type PostgresDB struct {
	Pool *pgxpool.Pool

	applySchema  func(ctx context.Context) error
	readyTimeout time.Duration
	schemaGroup  singleflight.Group
	schemaReady  atomic.Bool
}

// NewPostgresDB creates a new PostgreSQL connection pool. Connections are opened
// lazily, so an unreachable server surfaces through Ping or Ready, not here.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	// Connection pool configuration
	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime()
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout()

	// Add health check for connections
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		err := conn.Ping(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	db := &PostgresDB{Pool: pool, readyTimeout: cfg.ConnectTimeout()}
	db.applySchema = db.migrate
	return db, nil
}

// Ping checks that the server answers
func (db *PostgresDB) Ping(ctx context.Context) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
	}
	return db.Pool.Ping(ctx)
}

// Ready applies the embedded schema once the server is reachable. It is cheap after
// the first success and is called before every repository operation, so a database
// that comes up after the service still gets its tables. Concurrent callers share a
// single attempt, and each stops waiting when its own context is done.
func (db *PostgresDB) Ready(ctx context.Context) error {
	if db.schemaReady.Load() {
		return nil
	}

	result := db.schemaGroup.DoChan("schema", func() (interface{}, error) {
		if db.schemaReady.Load() {
			return nil, nil
		}

		timeout := db.readyTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		attemptCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := db.applySchema(attemptCtx); err != nil {
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		db.schemaReady.Store(true)
		return nil, nil
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (db *PostgresDB) migrate(ctx context.Context) error {
	return migrations.NewMigrator(db.Pool).MigrateFromFS(ctx, migrations.Files)
}

// Close closing method
func (db *PostgresDB) Close(ctx context.Context) error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return nil
}
