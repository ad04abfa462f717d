package application

import (
	"context"
	"slices"
)

// Compile-time check that MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository is an in-memory, read-only implementation of Repository.
// Contents are fixed at construction.
type MemoryRepository struct {
	apps  []Application
	index map[string]int
}

// NewMemoryRepository creates a repository holding a copy of apps.
// Later entries with a duplicate ID are ignored.
func NewMemoryRepository(apps []Application) *MemoryRepository {
	r := &MemoryRepository{
		apps:  make([]Application, 0, len(apps)),
		index: make(map[string]int, len(apps)),
	}
	for _, a := range apps {
		if _, ok := r.index[a.ID]; ok {
			continue
		}
		r.index[a.ID] = len(r.apps)
		r.apps = append(r.apps, a)
	}
	return r
}

// NewSeededRepository creates a repository holding the portal's sample applications.
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository(Seed())
}

// FindByID retrieves an application by its ID.
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	i, ok := r.index[id]
	if !ok {
		return Application{}, ErrApplicationNotFound
	}
	return r.apps[i], nil
}

// List returns all applications. The returned slice is a copy.
func (r *MemoryRepository) List(ctx context.Context) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.apps), nil
}
