// Package storage provides read access to catalog documents.
// It defines the Storage interface (port) and implementations backed by
// local disk, an fs.FS (the compiled-in seed) and S3.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no document exists under the requested key.
var ErrNotFound = errors.New("document not found")

// Storage defines read access to documents addressed by key.
type Storage interface {
	// Open returns a reader for the document stored under key.
	// The caller is responsible for closing the returned ReadCloser.
	// Returns ErrNotFound if the key does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
