package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/config"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioStore implements Store on MinIO or any S3-compatible backend.
// It is safe for concurrent use.
type minioStore struct {
	client *minio.Client
	bucket string

	logger *logger.Logger
}

// NewMinIO connects to the object store described by cfg and creates the
// bucket when it does not exist yet.
func NewMinIO(ctx context.Context, cfg config.Images, logger *logger.Logger) (Store, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrInvalidConfig
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingStore, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: check bucket: %w", ErrConnectingStore, err)
	}
	if !exists {
		logger.Info().Str("bucket", cfg.Bucket).Msg("creating image bucket")
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%w: create bucket: %w", ErrConnectingStore, err)
		}
	}

	return &minioStore{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (m *minioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioStore.Put").Str("key", key).Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrUploadingImage, err)
	}

	return nil
}

// PresignGet checks that the object exists before signing, since a signed
// link to a missing key would only fail at download time.
func (m *minioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).StatusCode == http.StatusNotFound {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrPresigningImageLink, err)
	}

	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPresigningImageLink, err)
	}

	return u.String(), nil
}

func (m *minioStore) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
