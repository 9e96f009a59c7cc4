package db

import (
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Flarenzy/ixp-ipam/internal/db/migrations"
)

func TestListMigrationsOrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.up.sql":  {Data: []byte("SELECT 1")},
		"002_second.up.sql": {Data: []byte("SELECT 1")},
		"001_init.up.sql":   {Data: []byte("SELECT 1")},
		"001_init.down.sql": {Data: []byte("SELECT 1")},
		"README.md":         {Data: []byte("docs")},
	}

	got, err := listMigrations(fsys)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"001_init.up.sql", "002_second.up.sql", "010_later.up.sql"}
	if len(got) != len(want) {
		t.Fatalf("expected %d migrations, got %d", len(want), len(got))
	}
	for i, m := range got {
		if m.name != want[i] {
			t.Fatalf("migration %d: expected %s, got %s", i, want[i], m.name)
		}
	}
}

func TestEmbeddedMigrationsArePresent(t *testing.T) {
	got, err := listMigrations(migrations.Files)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) == 0 || got[0].version != 1 {
		t.Fatalf("expected the initial migration to be embedded, got %+v", got)
	}
}

func TestParseUUIDRoundTrip(t *testing.T) {
	const id = "6f1c2a34-8b7e-4f1e-9a51-1b2c3d4e5f60"

	parsed, err := parseUUID(id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := uuidString(parsed); got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}

	if _, err := parseUUID("not-a-uuid"); err == nil {
		t.Fatal("expected an error for a malformed id")
	}
	if got := uuidString(pgtype.UUID{}); got != "" {
		t.Fatalf("expected empty string for a null id, got %q", got)
	}
}
