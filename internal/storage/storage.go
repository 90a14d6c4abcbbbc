package storage

import (
	"context"
	"io"
)

// Storage abstracts where task evidence files live. Resumes are kept as
// blobs on the candidate row and never pass through here.
type Storage interface {
	// Save stores a file at the given path, creating parent directories.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string
	BaseURL  string
}

// NewStorage builds the storage backend.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
