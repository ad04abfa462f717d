package application

import (
	"context"
	"errors"
)

// ErrApplicationNotFound is returned when an application cannot be found by ID.
var ErrApplicationNotFound = errors.New("application not found")

// Repository defines read access to applications.
// The board never writes applications back, so the port is read-only.
type Repository interface {
	// FindByID retrieves an application by its unique identifier.
	// Returns ErrApplicationNotFound if the application does not exist.
	FindByID(ctx context.Context, id string) (Application, error)

	// List returns all applications in their original order.
	List(ctx context.Context) ([]Application, error)
}
