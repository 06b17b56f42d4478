// Package images stores user-uploaded pictures (recipe covers and profile
// pictures) in an S3-compatible object store and prepares them for storage.
package images

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/images_mock.go -package=mock

// Store is an object store for image bytes.
type Store interface {
	// Put uploads size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PresignGet returns a time-limited download URL. A missing key yields
	// ErrImageNotFound.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
