package handlers

import (
	"errors"
	"net/url"

	"catalog/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UploadHandler serves stored product images back from the storage backend.
type UploadHandler struct {
	store storage.Storage
	log   *logrus.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.Storage, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

// RegisterRoutes mounts the file route under uploadPath, e.g. "public/uploads".
func (h *UploadHandler) RegisterRoutes(router fiber.Router, uploadPath string) {
	router.Get("/"+uploadPath+"/:name", h.HandleGetFile)
}

func (h *UploadHandler) HandleGetFile(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "file not found")
	}

	obj, err := h.store.Open(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return errorResponse(c, fiber.StatusNotFound, "file not found")
		}
		h.log.WithError(err).WithField("file", name).Error("Failed to open stored file")
		return errorResponse(c, fiber.StatusInternalServerError, "could not read file")
	}

	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	// fasthttp closes the stream once the body has been written.
	return c.SendStream(obj, int(obj.Size))
}
