package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus-survey/internal/pkg/logger"
)

// Files holds the SQL migrations for the postgres document tables.
//
//go:embed sql/*.sql
var Files embed.FS

// migrationLockKey serialises concurrent migrators on the same database.
const migrationLockKey = 7_340_211

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// MigrateFromFS applies every pending sql/*.sql file of fsys in name order.
func (m *Migrator) MigrateFromFS(ctx context.Context, fsys fs.FS) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := m.apply(ctx, fsys, file); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one migration file and records it in the same transaction.
func (m *Migrator) apply(ctx context.Context, fsys fs.FS, file string) error {
	version := migrationVersion(file)

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}

	var applied bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&applied)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if applied {
		logger.Debug().Str("migration", file).Msg("Migration already applied, skipping")
		return nil
	}

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration execution: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info().Str("migration", file).Msg("Migration file successfully applied")
	return nil
}

// migrationFiles lists the sql files under sql/ sorted by name.
func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, path.Join("sql", entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// migrationVersion extracts the version prefix, e.g. "sql/001_init.sql" => "001".
func migrationVersion(file string) string {
	return strings.SplitN(path.Base(file), "_", 2)[0]
}
