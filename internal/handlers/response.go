package handlers

import (
	"errors"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// errorResponse writes the uniform failure body.
func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// statusFor maps a service error to an HTTP status. notFound is the status
// used for ErrProductNotFound, which differs between routes.
func statusFor(err error, notFound int) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		return notFound
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidProductID),
		errors.Is(err, services.ErrMissingImage),
		errors.Is(err, services.ErrUnsupportedImageType),
		errors.Is(err, services.ErrTooManyImages),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnknownField):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// failure logs err and writes the matching response. Internal failures do
// not leak store details to the client.
func failure(c *fiber.Ctx, log *logrus.Logger, err error, notFound int, internalMsg string) error {
	status := statusFor(err, notFound)
	entry := log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": status,
	})
	if status >= fiber.StatusInternalServerError {
		entry.Error("Request failed")
		return errorResponse(c, status, internalMsg)
	}
	entry.Warn("Request rejected")
	return errorResponse(c, status, err.Error())
}
