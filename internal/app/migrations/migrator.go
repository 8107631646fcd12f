package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var schemaFS embed.FS

// Step is one idempotent schema statement group, applied in version order.
type Step struct {
	Version string
	Name    string
	SQL     string
}

// Steps returns the embedded schema steps sorted by version. Parents always
// precede the tables that reference them.
func Steps() ([]Step, error) {
	entries, err := fs.ReadDir(schemaFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	var steps []Step
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", entry.Name(), err)
		}
		base := strings.TrimSuffix(entry.Name(), ".sql")
		version, name, _ := strings.Cut(base, "_")
		steps = append(steps, Step{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })
	return steps, nil
}

// DB is the subset of *pgxpool.Pool the migrator needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator provisions the relational schema. It only creates what is missing
// and never alters or drops existing tables.
type Migrator struct {
	db     DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db DB, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// apply runs one step and records it in the same transaction.
func (m *Migrator) apply(ctx context.Context, step Step) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, step.SQL); err != nil {
		return fmt.Errorf("schema step %s_%s failed: %w", step.Version, step.Name, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2) ON CONFLICT (version) DO NOTHING`,
		step.Version, step.Name,
	); err != nil {
		return fmt.Errorf("failed to record schema step %s: %w", step.Version, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema step %s: %w", step.Version, err)
	}
	return nil
}

// Migrate ensures every table exists. It is safe to call on every start.
func (m *Migrator) Migrate(ctx context.Context) error {
	steps, err := Steps()
	if err != nil {
		return err
	}

	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, step := range steps {
		applied, err := m.isMigrationApplied(ctx, step.Version)
		if err != nil {
			return err
		}
		if applied {
			m.logger.Debug().Str("version", step.Version).Str("table", step.Name).Msg("Schema step already applied, skipping")
			continue
		}

		if err := m.apply(ctx, step); err != nil {
			m.logger.Error().Err(err).Str("version", step.Version).Str("table", step.Name).Msg("Schema step failed")
			return err
		}
		m.logger.Info().Str("version", step.Version).Str("table", step.Name).Msg("Schema step applied")
	}

	m.logger.Info().Int("steps", len(steps)).Msg("Database and all tables initialized successfully")
	return nil
}
