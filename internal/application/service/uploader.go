package service

import (
	"context"
	"io"
)

// Uploader is the document storage collaborator behind certificate files.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
