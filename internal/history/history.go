// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package history persists network measurement samples so sweeps, bandwidth
// readings and reachability checks can be reviewed and exported later. It
// abstracts the underlying database (SQLite, PostgreSQL or MySQL) behind a
// single Store type backed by bun.
package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var embeddedMigrations embed.FS

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// rowsAffected allows tests to exercise drivers that cannot report counts.
var rowsAffected = func(res sql.Result) (int64, error) { return res.RowsAffected() }

// Sample kinds.
const (
	KindPing      = "ping"
	KindSweep     = "sweep"
	KindBandwidth = "bandwidth"
)

// Sample is one recorded network measurement.
type Sample struct {
	bun.BaseModel `bun:"table:samples"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Kind      string    `bun:"kind,notnull"`
	Target    string    `bun:"target,notnull"`
	Down      float64   `bun:"down_bps"`
	Up        float64   `bun:"up_bps"`
	Reachable bool      `bun:"reachable"`
	TookMS    int64     `bun:"took_ms"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// Store is the sample persistence layer.
type Store struct {
	db *bun.DB
}

// NewStoreFromDSN opens a database for the given type and DSN, runs the
// embedded migrations and returns a ready Store.
func NewStoreFromDSN(dbType, dsn string) (*Store, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}

	switch dbType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database type: %q", dbType)
	}

	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configurePool(sqlDB, dbType, dsn)

	if err := runMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: createBunDB(sqlDB, dbType)}, nil
}

// configurePool sets conservative pool defaults, overridable through
// GOTOOLS_DB_* environment variables.
func configurePool(sqlDB *sql.DB, dbType, dsn string) {
	maxOpen := envInt("GOTOOLS_DB_MAX_OPEN_CONNS", 25)
	maxIdle := envInt("GOTOOLS_DB_MAX_IDLE_CONNS", 25)

	// In-memory SQLite databases exist per connection; force a single open
	// connection so the schema stays visible.
	if dbType == "sqlite" && strings.Contains(dsn, ":memory:") {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Duration(envInt("GOTOOLS_DB_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(envInt("GOTOOLS_DB_CONN_MAX_IDLE_SECONDS", 60)) * time.Second)
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// runMigrations applies the embedded .up.sql files for dbType in name order,
// tracked in a schema_migrations table.
func runMigrations(db *sql.DB, dbType string) error {
	migrationsPath := "migrations/" + dbType

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(db, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		query := "SELECT 1 FROM schema_migrations WHERE version = ?"
		if dbType == "postgres" {
			query = "SELECT 1 FROM schema_migrations WHERE version = $1"
		}
		var exists int
		err := db.QueryRow(query, version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}

		data, err := embeddedMigrations.ReadFile(path.Join(migrationsPath, fname))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", fname, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
		}
		if _, err := tx.Exec(string(data)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", version, err)
		}

		insertQuery := "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)"
		if dbType == "postgres" {
			insertQuery = "INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2)"
		}
		if _, err := tx.Exec(insertQuery, version, time.Now()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
	}
	return nil
}

func ensureSchemaMigrationsTable(db *sql.DB, dbType string) error {
	// MySQL cannot index TEXT columns without a length; use VARCHAR there.
	stmt := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP)`
	if dbType == "mysql" {
		stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(191) PRIMARY KEY, applied_at TIMESTAMP)`
	}
	_, err := db.Exec(stmt)
	return err
}

// Add records a sample. A zero CreatedAt is stamped with the current time.
func (s *Store) Add(ctx context.Context, sample *Sample) error {
	if sample.Kind == "" {
		return fmt.Errorf("sample kind must not be empty")
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}
	if _, err := s.db.NewInsert().Model(sample).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}
	return nil
}

// List returns the newest samples first, optionally filtered by kind. A
// limit of 0 returns everything.
func (s *Store) List(ctx context.Context, kind string, limit int) ([]Sample, error) {
	q := s.db.NewSelect().Model((*Sample)(nil)).Order("created_at DESC", "id DESC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var samples []Sample
	if err := q.Scan(ctx, &samples); err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	return samples, nil
}

// Purge deletes samples older than cutoff and reports how many went away.
func (s *Store) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.NewDelete().Model((*Sample)(nil)).Where("created_at < ?", cutoff).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge samples: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return 0, fmt.Errorf("failed to count purged samples: %w", err)
	}
	return n, nil
}

// Close releases the underlying database connections.
func (s *Store) Close() error {
	return s.db.Close()
}
