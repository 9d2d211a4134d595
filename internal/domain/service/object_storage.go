package service

import (
	"context"
	"io"
)

// UploadInput describes one file to be stored.
type UploadInput struct {
	// Filename is the client-supplied name, used to derive the object key.
	Filename string
	// ContentType must be an image media type.
	ContentType string
	// Size is the declared length in bytes, checked against the upload cap.
	Size int64
	// Body supplies the file content.
	Body io.Reader
}

// ObjectStorage defines the interface for storing product and store images.
type ObjectStorage interface {
	// Upload validates and stores a single image, returning its public URL.
	Upload(ctx context.Context, input UploadInput) (string, error)

	// Delete removes a previously uploaded image by its public URL.
	// Deleting an unknown URL is not an error.
	Delete(ctx context.Context, publicURL string) error
}
