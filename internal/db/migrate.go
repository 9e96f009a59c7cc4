package db

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Flarenzy/ixp-ipam/internal/db/migrations"
)

var migrationFileRe = regexp.MustCompile(`^(\d+)_.+\.up\.sql$`)

type migration struct {
	version int64
	name    string
}

// Migrate applies the embedded schema migrations that are not yet recorded
// in schema_migrations and returns the names it applied.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := listMigrations(migrations.Files)
	if err != nil {
		return nil, err
	}

	applied := map[int64]bool{}
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return nil, err
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var done []string
	for _, m := range pending {
		if applied[m.version] {
			continue
		}

		body, err := fs.ReadFile(migrations.Files, m.name)
		if err != nil {
			return done, fmt.Errorf("read migration %s: %w", m.name, err)
		}
		stmt := strings.TrimSpace(string(body))
		if stmt == "" {
			continue
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return done, fmt.Errorf("begin migration %s: %w", m.name, err)
		}
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)
			return done, fmt.Errorf("migration %s failed: %w", m.name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
			_ = tx.Rollback(ctx)
			return done, fmt.Errorf("record migration %s: %w", m.name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return done, fmt.Errorf("commit migration %s: %w", m.name, err)
		}
		done = append(done, m.name)
	}

	return done, nil
}

func listMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var out []migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		match := migrationFileRe.FindStringSubmatch(e.Name())
		if match == nil {
			continue
		}
		version, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", e.Name(), err)
		}
		out = append(out, migration{version: version, name: e.Name()})
	}

	slices.SortFunc(out, func(a, b migration) int {
		return cmp.Compare(a.version, b.version)
	})
	return out, nil
}
