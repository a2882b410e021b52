package core

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"scrolls/internal/infra/persistence/memory"
	"scrolls/internal/infra/persistence/postgres"
	"scrolls/internal/infra/persistence/postgres/testutil"
	"scrolls/internal/infra/persistence/sqlite"
)

func TestOpenPersistentStoreDefaultSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrolls.db")
	store, err := OpenPersistentStore(context.Background(), StorageOptions{SQLitePath: path}, NewDefaultRulesEngine())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	s, ok := store.(*sqlite.Store)
	if !ok {
		t.Fatalf("expected *sqlite.Store, got %T", store)
	}
	if s.Path() != path {
		t.Fatalf("expected path %s, got %s", path, s.Path())
	}
}

func TestOpenPersistentStoreMemory(t *testing.T) {
	store, err := OpenPersistentStore(context.Background(), StorageOptions{Driver: StorageMemory}, NewDefaultRulesEngine())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("expected *memory.Store, got %T", store)
	}
}

func TestOpenPersistentStorePostgres(t *testing.T) {
	db, _ := testutil.NewStubDB()
	restore := postgres.OverrideSQLOpen(func(_, _ string) (*sql.DB, error) { return db, nil })
	defer restore()
	store, err := OpenPersistentStore(context.Background(), StorageOptions{Driver: StoragePostgres, PostgresDSN: "postgres://stub"}, NewDefaultRulesEngine())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := store.(*postgres.Store); !ok {
		t.Fatalf("expected *postgres.Store, got %T", store)
	}
}

func TestOpenPersistentStoreUnknownDriver(t *testing.T) {
	if _, err := OpenPersistentStore(context.Background(), StorageOptions{Driver: "bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
