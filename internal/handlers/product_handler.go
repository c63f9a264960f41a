package handlers

import (
	"fmt"
	"strconv"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	log     *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/get/count", h.HandleGetCount)
	productRoutes.Get("/get/featured/:count", h.HandleGetFeatured)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/gallery-images/:id", h.HandleUpdateGallery)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists products, optionally filtered by ?categories=id1,id2.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext(), splitCategories(c.Query("categories")))
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		// A malformed id cannot name a product.
		if statusFor(err, fiber.StatusNotFound) == fiber.StatusBadRequest {
			return errorResponse(c, fiber.StatusNotFound, services.ErrProductNotFound.Error())
		}
		return failure(c, h.log, err, fiber.StatusNotFound, "could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a multipart body with an image file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in, image, err := parseProductRequest(c)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusBadRequest, "the product cannot be created")
	}

	product, err := h.service.CreateProduct(c.UserContext(), c.BaseURL(), in, image)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusBadRequest, "the product cannot be created")
	}
	return c.JSON(product)
}

// HandleUpdateProduct rewrites a product. The image file is optional.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	in, image, err := parseProductRequest(c)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusBadRequest, "the product cannot be updated")
	}

	product, err := h.service.UpdateProduct(c.UserContext(), c.BaseURL(), c.Params("id"), in, image)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusBadRequest, "the product cannot be updated")
	}
	return c.JSON(product)
}

// HandleUpdateGallery replaces the image gallery of a product.
func (h *ProductHandler) HandleUpdateGallery(c *fiber.Ctx) error {
	files, err := parseGalleryRequest(c)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "the gallery cannot be updated")
	}

	product, err := h.service.UpdateGallery(c.UserContext(), c.BaseURL(), c.Params("id"), files)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "the gallery cannot be updated")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	removed, err := h.service.DeleteProduct(c.UserContext(), c.Params("id"))
	if err != nil && statusFor(err, fiber.StatusNotFound) != fiber.StatusBadRequest {
		return failure(c, h.log, err, fiber.StatusNotFound, "the product cannot be deleted")
	}
	if !removed {
		return errorResponse(c, fiber.StatusNotFound, services.ErrProductNotFound.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "the product is deleted",
	})
}

// HandleGetCount returns the total number of products.
func (h *ProductHandler) HandleGetCount(c *fiber.Ctx) error {
	count, err := h.service.CountProducts(c.UserContext())
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "could not count products")
	}
	return c.JSON(fiber.Map{"productCount": count})
}

// HandleGetFeatured returns up to :count featured products.
func (h *ProductHandler) HandleGetFeatured(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Params("count"))
	if err != nil || limit < 0 {
		return failure(c, h.log, fmt.Errorf("%w: %v", services.ErrInvalidInput, errBadCount), fiber.StatusNotFound, "")
	}

	products, err := h.service.GetFeaturedProducts(c.UserContext(), limit)
	if err != nil {
		return failure(c, h.log, err, fiber.StatusNotFound, "could not retrieve featured products")
	}
	return c.JSON(products)
}
