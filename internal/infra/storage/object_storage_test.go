package storage

import (
	"context"
	"strings"
	"testing"

	"organic/config"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	cfg := &config.Config{}
	cfg.Storage = &config.StorageConfig{PublicBaseURL: "https://cdn.example.com"}

	return NewObjectStorage(bucket, cfg)
}

func TestObjectStorage_Upload(t *testing.T) {
	store := newTestStorage(t)

	url, err := store.Upload(context.Background(), service.UploadInput{
		Filename:    "hero.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/images/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestObjectStorage_Upload_RejectsNonImage(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.Upload(context.Background(), service.UploadInput{
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}

func TestObjectStorage_Upload_RejectsOversizedDeclaration(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.Upload(context.Background(), service.UploadInput{
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        MaxImageSize + 1,
		Body:        strings.NewReader("data"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestObjectStorage_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, service.UploadInput{
		Filename:    "product.webp",
		ContentType: "image/webp",
		Size:        5,
		Body:        strings.NewReader("bytes"),
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, url))

	// Deleting an unknown or foreign URL is a no-op, not an error.
	assert.NoError(t, store.Delete(ctx, url))
	assert.NoError(t, store.Delete(ctx, "https://elsewhere.example.com/images/x.png"))
}
