// Package storage implements image storage on a gocloud.dev blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"organic/config"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/lifecycle"
	"organic/internal/domain/service"
	"organic/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers are registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// MaxImageSize is the upload cap for a single image.
const MaxImageSize = 5 << 20 // 5 MiB

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured blob bucket and ties its lifetime to the app.
func NewBucket(params Params) (*blob.Bucket, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// objectStorage implements service.ObjectStorage on a blob bucket.
type objectStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewObjectStorage is the constructor for objectStorage.
func NewObjectStorage(bucket *blob.Bucket, cfg *config.Config) service.ObjectStorage {
	publicBaseURL := ""
	if cfg != nil && cfg.Storage != nil {
		publicBaseURL = strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/")
	}

	return &objectStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

// Upload validates and stores a single image, returning its public URL.
// Validation happens before any byte reaches the bucket.
func (s *objectStorage) Upload(ctx context.Context, input service.UploadInput) (string, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", domainerrors.ErrUnsupportedImageType
	}
	if input.Size > MaxImageSize {
		return "", domainerrors.ErrImageTooLarge
	}

	key := buildObjectKey(input.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	// LimitReader guards against bodies longer than the declared size.
	written, err := writer.ReadFrom(io.LimitReader(input.Body, MaxImageSize+1))
	if err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}
	if written > MaxImageSize {
		writer.Close()
		// Best effort removal of the oversized object.
		_ = s.bucket.Delete(ctx, key)

		return "", domainerrors.ErrImageTooLarge
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously uploaded image by its public URL.
func (s *objectStorage) Delete(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromURL(publicURL)
	if !ok {
		return nil
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check image existence")
	}
	if !exists {
		return nil
	}

	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete image")
}

func (s *objectStorage) keyFromURL(publicURL string) (string, bool) {
	if s.publicBaseURL == "" || !strings.HasPrefix(publicURL, s.publicBaseURL+"/") {
		return "", false
	}

	key := strings.TrimPrefix(publicURL, s.publicBaseURL+"/")

	return key, key != ""
}

// buildObjectKey derives a collision-free object key from the upload name,
// keeping the extension so content sniffing on CDNs keeps working.
func buildObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("images/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.New().String(), ext)
}
