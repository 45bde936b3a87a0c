package handler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rl1809/partstore/internal/adapter/storage"
	"github.com/rl1809/partstore/internal/core/domain"
	"github.com/rl1809/partstore/internal/core/service"
)

var errStoreDown = errors.New("connection refused")

// downRepo fails every call, like a store whose connection has dropped.
type downRepo struct{}

func (downRepo) CreatePart(context.Context, domain.Part) error { return errStoreDown }
func (downRepo) ListParts(context.Context) ([]domain.Part, error) {
	return nil, errStoreDown
}
func (downRepo) UpdatePart(context.Context, string, domain.Fields) (int64, error) {
	return 0, errStoreDown
}
func (downRepo) DeletePart(context.Context, string) (int64, error) { return 0, errStoreDown }
func (downRepo) Ping(context.Context) error { return errStoreDown }
func (downRepo) Close() error { return nil }

func newMemoryService(t *testing.T, opts ...service.Option) *service.PartService {
	t.Helper()
	repo, err := storage.NewMemoryAdapter()
	require.NoError(t, err)

	svc := service.NewPartService(opts...)
	svc.Attach(repo)
	return svc
}

func newPublicDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>parts</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('parts')"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0o755))
	return dir
}
