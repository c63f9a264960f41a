package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"catalog/pkg/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadConfig controls where and how uploaded images are stored.
type UploadConfig struct {
	// UploadPath is the public path segment files are served under, e.g. "public/uploads".
	UploadPath string
	// MaxGalleryImages caps the number of files in one gallery update.
	MaxGalleryImages int
	// AllowedTypes maps an accepted declared content type to the stored extension.
	AllowedTypes map[string]string
}

// DefaultUploadConfig accepts png and jpeg images under public/uploads.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		UploadPath:       "public/uploads",
		MaxGalleryImages: 10,
		AllowedTypes: map[string]string{
			"image/png":  "png",
			"image/jpeg": "jpeg",
			"image/jpg":  "jpg",
		},
	}
}

// ImageBinder turns files attached to a request into stored files and
// absolute URLs.
type ImageBinder struct {
	cfg    UploadConfig
	store  storage.Storage
	log    *logrus.Logger
	now    func() time.Time
	suffix func() string
}

// NewImageBinder creates an ImageBinder writing to store.
func NewImageBinder(cfg UploadConfig, store storage.Storage, log *logrus.Logger) *ImageBinder {
	return &ImageBinder{
		cfg:   cfg,
		store: store,
		log:   log,
		now:   time.Now,
		suffix: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		},
	}
}

// MaxGalleryImages returns the configured gallery cap.
func (b *ImageBinder) MaxGalleryImages() int {
	return b.cfg.MaxGalleryImages
}

// Extension resolves the stored extension for a declared content type.
func (b *ImageBinder) Extension(mimeType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	ext, ok := b.cfg.AllowedTypes[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, mimeType)
	}
	return ext, nil
}

// StoredName derives the file name an upload is stored under: the original
// base name with whitespace runs joined by "-", the upload time in
// milliseconds and a short random component.
func (b *ImageBinder) StoredName(originalName, ext string) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return fmt.Sprintf("%s-%d-%s.%s", base, b.now().UnixMilli(), b.suffix(), ext)
}

// URL builds the absolute reference for a stored file from the request origin.
func (b *ImageBinder) URL(origin, storedName string) string {
	return strings.TrimRight(origin, "/") + "/" + b.cfg.UploadPath + "/" + url.PathEscape(storedName)
}

// BindSingle stores one image and returns its URL.
func (b *ImageBinder) BindSingle(ctx context.Context, origin string, file UploadedFile) (string, error) {
	ext, err := b.Extension(file.MimeType)
	if err != nil {
		return "", err
	}
	return b.store1(ctx, origin, file, ext)
}

// BindGallery stores files in upload order and returns their URLs. Every
// file's type is checked before any bytes are written. An empty set yields
// an empty, non-nil slice.
func (b *ImageBinder) BindGallery(ctx context.Context, origin string, files []UploadedFile) ([]string, error) {
	if len(files) > b.cfg.MaxGalleryImages {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyImages, len(files), b.cfg.MaxGalleryImages)
	}
	exts := make([]string, len(files))
	for i, f := range files {
		ext, err := b.Extension(f.MimeType)
		if err != nil {
			return nil, err
		}
		exts[i] = ext
	}

	urls := make([]string, 0, len(files))
	for i, f := range files {
		u, err := b.store1(ctx, origin, f, exts[i])
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func (b *ImageBinder) store1(ctx context.Context, origin string, file UploadedFile, ext string) (string, error) {
	name := b.StoredName(file.OriginalName, ext)

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", file.OriginalName, err)
	}
	defer rc.Close()

	if err := b.store.Save(ctx, name, file.MimeType, rc, file.Size); err != nil {
		return "", err
	}
	b.log.WithFields(logrus.Fields{
		"file":    name,
		"backend": b.store.Backend(),
		"size":    file.Size,
	}).Info("Stored uploaded image")
	return b.URL(origin, name), nil
}
