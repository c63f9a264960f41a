// Package storage persists uploaded product images. Stored objects are
// append-only: nothing in the service removes or overwrites them.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrObjectNotFound = errors.New("stored object not found")
	ErrInvalidName    = errors.New("invalid object name")
	ErrUploadFailed   = errors.New("failed to store file")
)

// Object is an opened stored file. Callers must Close it.
type Object struct {
	io.ReadCloser
	ContentType string
	Size        int64
}

// Storage is the destination for uploaded image bytes.
type Storage interface {
	// Save writes r under name. size may be -1 when unknown.
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) error
	// Open returns the stored object for name.
	Open(ctx context.Context, name string) (*Object, error)
	// Backend names the implementation for logs and health output.
	Backend() string
}

// validName rejects names that could escape the upload namespace.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == 0 {
			return false
		}
	}
	return true
}
