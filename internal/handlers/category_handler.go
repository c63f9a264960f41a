package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	log     *logrus.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

// RegisterRoutes registers the category routes with the Fiber router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "could not retrieve categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "could not retrieve category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.service.CreateCategory(c.UserContext(), &category); err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "the category cannot be created")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	removed, err := h.service.DeleteCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "the category cannot be deleted")
	}
	if !removed {
		return errorResponse(c, fiber.StatusNotFound, services.ErrCategoryNotFound.Error())
	}
	return c.JSON(fiber.Map{"success": true, "message": "the category is deleted"})
}
