package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidKey is returned when a key would resolve outside the base directory.
var ErrInvalidKey = errors.New("invalid document key")

// Compile-time checks that the implementations satisfy Storage.
var (
	_ Storage = (*LocalStorage)(nil)
	_ Storage = (*FSStorage)(nil)
	_ Storage = (*S3Storage)(nil)
)

// LocalStorage implements Storage using files under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a new LocalStorage rooted at baseDir.
// The directory must exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "."
	}

	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("stat base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %s is not a directory", baseDir)
	}

	return &LocalStorage{baseDir: baseDir}, nil
}

// BaseDir returns the base directory path.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Open opens the file baseDir/key.
func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean)) // #nosec G304 - key is confined to baseDir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}

	return f, nil
}

// FSStorage implements Storage over an fs.FS, such as an embed.FS.
type FSStorage struct {
	fsys fs.FS
}

// NewFSStorage creates a new FSStorage.
func NewFSStorage(fsys fs.FS) *FSStorage {
	return &FSStorage{fsys: fsys}
}

// Open opens key inside the file system.
func (s *FSStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	f, err := s.fsys.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}

	return f, nil
}
