package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"

	"github.com/spf13/afero"
)

// LocalStorage keeps uploads in a directory of an afero filesystem.
type LocalStorage struct {
	fs  afero.Fs
	dir string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(fs afero.Fs, dir string) (*LocalStorage, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalStorage{fs: fs, dir: dir}, nil
}

func (s *LocalStorage) Backend() string { return "local" }

// Save writes a new file. An existing file with the same name is never replaced.
func (s *LocalStorage) Save(ctx context.Context, name, contentType string, r io.Reader, size int64) error {
	if !validName(name) {
		return ErrInvalidName
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(path.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, name string) (*Object, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}
	f, err := s.fs.Open(path.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	return &Object{
		ReadCloser:  f,
		ContentType: mime.TypeByExtension(path.Ext(name)),
		Size:        info.Size(),
	}, nil
}
