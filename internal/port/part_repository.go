package port

import (
	"context"

	"github.com/rl1809/partstore/internal/core/domain"
)

type PartRepository interface {
	// CreatePart inserts a new part; the id is already assigned by the caller
	CreatePart(ctx context.Context, part domain.Part) error

	// ListParts returns every part ordered by id, newest first
	ListParts(ctx context.Context) ([]domain.Part, error)

	// UpdatePart overwrites the set fields and returns how many parts matched (0 or 1)
	UpdatePart(ctx context.Context, id string, fields domain.Fields) (int64, error)

	// DeletePart removes the part and returns how many parts were removed (0 or 1)
	DeletePart(ctx context.Context, id string) (int64, error)

	// Ping checks the store connection
	Ping(ctx context.Context) error

	Close() error
}
