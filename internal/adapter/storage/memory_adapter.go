package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/rl1809/partstore/internal/core/domain"
)

const (
	memPartsTable = "parts"
	memIDIndex    = "id"
)

var ErrDuplicateID = errors.New("duplicate part id")

func memorySchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memPartsTable: {
				Name: memPartsTable,
				Indexes: map[string]*memdb.IndexSchema{
					memIDIndex: {
						Name:    memIDIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// MemoryAdapter keeps parts in process memory. Contents are lost on exit.
type MemoryAdapter struct {
	db *memdb.MemDB
}

func NewMemoryAdapter() (*MemoryAdapter, error) {
	db, err := memdb.NewMemDB(memorySchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &MemoryAdapter{db: db}, nil
}

func (m *MemoryAdapter) CreatePart(ctx context.Context, part domain.Part) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(memPartsTable, memIDIndex, part.ID)
	if err != nil {
		return fmt.Errorf("lookup part: %w", err)
	}
	if existing != nil {
		return ErrDuplicateID
	}

	stored := part.Clone()
	if err := txn.Insert(memPartsTable, &stored); err != nil {
		return fmt.Errorf("insert part: %w", err)
	}

	txn.Commit()
	return nil
}

func (m *MemoryAdapter) ListParts(ctx context.Context) ([]domain.Part, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.GetReverse(memPartsTable, memIDIndex)
	if err != nil {
		return nil, fmt.Errorf("scan parts: %w", err)
	}

	parts := []domain.Part{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		parts = append(parts, obj.(*domain.Part).Clone())
	}

	return parts, nil
}

func (m *MemoryAdapter) UpdatePart(ctx context.Context, id string, fields domain.Fields) (int64, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(memPartsTable, memIDIndex, id)
	if err != nil {
		return 0, fmt.Errorf("lookup part: %w", err)
	}
	if obj == nil {
		return 0, nil
	}

	// stored objects are immutable; replace with an updated copy
	updated := obj.(*domain.Part).Clone()
	fields.Apply(&updated)
	if err := txn.Insert(memPartsTable, &updated); err != nil {
		return 0, fmt.Errorf("update part: %w", err)
	}

	txn.Commit()
	return 1, nil
}

func (m *MemoryAdapter) DeletePart(ctx context.Context, id string) (int64, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(memPartsTable, memIDIndex, id)
	if err != nil {
		return 0, fmt.Errorf("delete part: %w", err)
	}

	txn.Commit()
	return int64(n), nil
}

func (m *MemoryAdapter) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryAdapter) Close() error {
	return nil
}
