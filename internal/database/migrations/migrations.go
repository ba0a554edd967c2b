// Package migrations applies the embedded, versioned schema files for each
// supported storage engine.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect describes the engine-specific parts of the migration bookkeeping.
type Dialect struct {
	Name        string
	Placeholder string
	CreateTable string
}

// Dialects for the supported engines.
var (
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: "$1",
		CreateTable: `
			CREATE TABLE IF NOT EXISTS schema_migrations (
				filename   TEXT PRIMARY KEY,
				applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	}
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: "?",
		CreateTable: `
			CREATE TABLE IF NOT EXISTS schema_migrations (
				filename   TEXT PRIMARY KEY,
				applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
	}
)

// ForDriver returns the dialect registered under the given driver name.
func ForDriver(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Run applies all unapplied migrations for the dialect in filename order.
// Each file runs in its own transaction together with its bookkeeping row.
// It returns the filenames applied by this call.
func Run(ctx context.Context, db *sql.DB, d Dialect) ([]string, error) {
	if _, err := db.ExecContext(ctx, d.CreateTable); err != nil {
		return nil, fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("get applied migrations: %w", err)
	}

	names, err := List(d)
	if err != nil {
		return nil, fmt.Errorf("list migration files: %w", err)
	}

	var ran []string
	for _, name := range names {
		if applied[name] {
			slog.Debug("migration already applied", "file", name)
			continue
		}

		if err := apply(ctx, db, d, name); err != nil {
			return ran, fmt.Errorf("apply migration %s: %w", name, err)
		}
		slog.Info("migration applied", "file", name, "dialect", d.Name)
		ran = append(ran, name)
	}

	return ran, nil
}

// List returns the migration filenames embedded for the dialect, sorted.
func List(d Dialect) ([]string, error) {
	entries, err := fs.ReadDir(files, d.Name)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, d Dialect, name string) error {
	content, err := fs.ReadFile(files, d.Name+"/"+name)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("execute sql: %w", err)
	}

	record := "INSERT INTO schema_migrations (filename) VALUES (" + d.Placeholder + ")"
	if _, err := tx.ExecContext(ctx, record, name); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}
