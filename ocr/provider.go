// Package ocr is the boundary to the external text-recognition service that
// turns scanned document images into raw text. Recognition itself happens
// behind this interface; this repository only consumes it.
package ocr

import (
	"context"
	"fmt"
	"io"
)

// Provides text recognition for document images
type Provider interface {
	// Get text from image. Thread safe
	Extract(ctx context.Context, image io.Reader, filename string) (string, error)
	// Check if this provider supports specific mime type
	IsMimeTypeSupported(mimeType string) bool
}

type ErrMimeTypeNotSupported struct {
	MimeType string
}

func (e *ErrMimeTypeNotSupported) Error() string {
	return fmt.Sprintf("mime type of the image is not supported: %s", e.MimeType)
}
