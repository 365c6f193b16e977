package storage

import (
	"context"
	"fmt"
	"io"

	"wantly_backend/internal/config"
)

// Storage abstracts where uploaded files (offer images) live. The
// backend is selected by configuration at startup.
type Storage interface {
	// Save stores the content of reader under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Open returns the file content for the given key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a file is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL the file is served from.
	URL(key string) string
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
