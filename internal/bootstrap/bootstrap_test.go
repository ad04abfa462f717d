package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maauso/guardjobs-api/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewDependencies_Seed(t *testing.T) {
	cfg := &config.Config{SubmitDelay: 0}

	deps, err := NewDependencies(context.Background(), cfg, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 8, deps.Catalog.Current().Len())
	assert.Nil(t, deps.Refresher)
	assert.NotNil(t, deps.Applications)
	assert.NotNil(t, deps.Employer)
}

func TestNewDependencies_LocalCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	doc := `jobs:
  - {id: "a", title: Patrol Officer, city: Noida, salary_min: 20000, salary_max: 26000, type: Contract, shift: Night}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := &config.Config{CatalogPath: path, CatalogRefresh: "@every 1h"}
	deps, err := NewDependencies(context.Background(), cfg, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, deps.Catalog.Current().Len())
	require.NotNil(t, deps.Refresher)

	// Edits on disk are picked up by a reload.
	require.NoError(t, os.WriteFile(path, []byte(doc+`  - {id: "b", title: Gate Keeper, city: Delhi, salary_min: 12000, salary_max: 15000, type: Full-time, shift: Day}
`), 0o644))
	require.NoError(t, deps.Catalog.Reload(context.Background()))
	assert.Equal(t, 2, deps.Catalog.Current().Len())
}

func TestNewDependencies_BadCatalog(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDependencies(context.Background(), &config.Config{CatalogPath: filepath.Join(dir, "missing.yaml")}, testLogger())
	assert.Error(t, err)

	_, err = NewDependencies(context.Background(), &config.Config{CatalogPath: "/does/not/exist/catalog.yaml"}, testLogger())
	assert.Error(t, err)
}
