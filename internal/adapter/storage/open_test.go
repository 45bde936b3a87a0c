package storage

import (
	"context"
	"errors"
	"testing"
)

func TestOpen_Memory(t *testing.T) {
	repo, err := Open(context.Background(), "memory://")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*MemoryAdapter); !ok {
		t.Errorf("expected *MemoryAdapter, got %T", repo)
	}
}

func TestOpen_SQLite(t *testing.T) {
	repo, err := Open(context.Background(), "sqlite::memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer repo.Close()

	adapter, ok := repo.(*SQLAdapter)
	if !ok {
		t.Fatalf("expected *SQLAdapter, got %T", repo)
	}
	if adapter.dialect != DialectSQLite {
		t.Errorf("expected dialect %s, got %s", DialectSQLite, adapter.dialect)
	}
	if _, ok := repo.(Migrator); !ok {
		t.Error("expected SQL store to be a Migrator")
	}
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "mongodb+srv://cluster.example.net/parts")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got: %v", err)
	}
}

func TestOpen_BadMySQLDSN(t *testing.T) {
	_, err := Open(context.Background(), "not a dsn")
	if err == nil {
		t.Error("expected error for malformed dsn")
	}
}

func TestOpen_EmptySQLitePath(t *testing.T) {
	_, err := Open(context.Background(), "sqlite://")
	if err == nil {
		t.Error("expected error for empty sqlite path")
	}
}
