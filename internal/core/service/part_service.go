package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rl1809/partstore/internal/core/domain"
	"github.com/rl1809/partstore/internal/port"
)

var (
	ErrNotReady   = errors.New("store not ready")
	ErrStoreRead  = errors.New("store read failed")
	ErrStoreWrite = errors.New("store write failed")
	ErrInvalidID  = errors.New("invalid part id")
	ErrNotFound   = errors.New("part not found")
)

type PartService struct {
	mu             sync.RWMutex
	repo           port.PartRepository
	strictNotFound bool
}

type Option func(*PartService)

// WithStrictNotFound makes update and delete of an unknown id return
// ErrNotFound instead of succeeding without effect.
func WithStrictNotFound(strict bool) Option {
	return func(s *PartService) {
		s.strictNotFound = strict
	}
}

// NewPartService returns a service with no store attached. Every operation
// fails with ErrNotReady until Attach is called.
func NewPartService(opts ...Option) *PartService {
	s := &PartService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach opens the readiness gate. It is called once the store connection has
// been established.
func (s *PartService) Attach(repo port.PartRepository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo = repo
}

func (s *PartService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo != nil
}

func (s *PartService) repository() (port.PartRepository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil {
		return nil, ErrNotReady
	}
	return s.repo, nil
}

func (s *PartService) Create(ctx context.Context, fields domain.Fields) (domain.Part, error) {
	repo, err := s.repository()
	if err != nil {
		return domain.Part{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Part{}, fmt.Errorf("generate id: %w", err)
	}

	part := domain.NewPart(id.String(), fields)
	if err := repo.CreatePart(ctx, part); err != nil {
		return domain.Part{}, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return part, nil
}

func (s *PartService) ListAll(ctx context.Context) ([]domain.Part, error) {
	repo, err := s.repository()
	if err != nil {
		return nil, err
	}

	parts, err := repo.ListParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	if parts == nil {
		parts = []domain.Part{}
	}

	return parts, nil
}

// UpdateByID returns the number of parts changed. An unknown id is not an error
// unless the service runs in strict mode.
func (s *PartService) UpdateByID(ctx context.Context, id string, fields domain.Fields) (int64, error) {
	repo, err := s.repository()
	if err != nil {
		return 0, err
	}

	id, err = normalizeID(id)
	if err != nil {
		return 0, err
	}

	n, err := repo.UpdatePart(ctx, id, fields)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return n, s.checkAffected(n)
}

func (s *PartService) DeleteByID(ctx context.Context, id string) (int64, error) {
	repo, err := s.repository()
	if err != nil {
		return 0, err
	}

	id, err = normalizeID(id)
	if err != nil {
		return 0, err
	}

	n, err := repo.DeletePart(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return n, s.checkAffected(n)
}

// Ping checks the attached store. It returns ErrNotReady before Attach.
func (s *PartService) Ping(ctx context.Context) error {
	repo, err := s.repository()
	if err != nil {
		return err
	}
	return repo.Ping(ctx)
}

// Close releases the attached store, if any.
func (s *PartService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repo == nil {
		return nil
	}
	err := s.repo.Close()
	s.repo = nil
	return err
}

func (s *PartService) checkAffected(n int64) error {
	if n == 0 && s.strictNotFound {
		return ErrNotFound
	}
	return nil
}

func normalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed.String(), nil
}
