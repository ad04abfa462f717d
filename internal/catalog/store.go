package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/maauso/guardjobs-api/internal/listing"
)

// Source opens catalog documents by key.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Store publishes the current catalog snapshot. Readers always see a
// complete snapshot; Reload swaps in a new one only if it parses.
type Store struct {
	source  Source
	key     string
	logger  *slog.Logger
	current atomic.Pointer[Catalog]
}

// NewStore creates a Store serving initial until the first successful Reload.
func NewStore(initial *Catalog, source Source, key string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		source: source,
		key:    key,
		logger: logger,
	}
	s.current.Store(initial)
	return s
}

// Load reads and parses the catalog document from source.
func Load(ctx context.Context, source Source, key string) (*Catalog, error) {
	rc, err := source.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", key, err)
	}

	return Parse(data)
}

// Current returns the snapshot in use.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Reload re-reads the catalog document. On failure the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	next, err := Load(ctx, s.source, s.key)
	if err != nil {
		s.logger.Error("catalog reload failed",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.current.Store(next)
	s.logger.Info("catalog reloaded",
		slog.String("key", s.key),
		slog.Int("jobs", next.Len()),
	)
	return nil
}

// Find looks up a job in the current snapshot.
func (s *Store) Find(id string) (listing.Job, error) {
	return s.Current().Find(id)
}

// Jobs returns the current snapshot's jobs.
func (s *Store) Jobs() []listing.Job {
	return s.Current().Jobs()
}
