package services

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ProductService handles business logic related to products. Every mutating
// operation validates first, binds images second and writes last, returning
// on the first failure.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	images     *ImageBinder
	events     eventNotifier
	log        *logrus.Logger
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(
	repo repositories.ProductRepository,
	categories repositories.CategoryRepository,
	images *ImageBinder,
	publisher EventPublisher,
	exchange string,
	log *logrus.Logger,
) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		images:     images,
		events:     eventNotifier{publisher: publisher, exchange: exchange, log: log},
		log:        log,
	}
}

func persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// GetAllProducts lists products, restricted to categoryIDs when non-empty.
func (s *ProductService) GetAllProducts(ctx context.Context, categoryIDs []string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx, repositories.ProductFilter{CategoryIDs: categoryIDs})
	if err != nil {
		return nil, persistence(err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if err := ValidateProductID(id); err != nil {
		return nil, err
	}
	return s.ValidateProductExists(ctx, id)
}

// CreateProduct validates the category and image, stores the image and
// persists the product.
func (s *ProductService) CreateProduct(ctx context.Context, origin string, in ProductInput, image *UploadedFile) (*models.Product, error) {
	category, err := s.ValidateCategoryRef(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrMissingImage
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	imageURL, err := s.images.BindSingle(ctx, origin, *image)
	if err != nil {
		return nil, err
	}

	product := in.toProduct()
	product.Image = imageURL
	product.Images = []string{}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, persistence(err)
	}
	product.Category = category

	s.log.WithFields(logrus.Fields{"product_id": product.ID, "category_id": category.ID}).Info("Product created")
	s.events.notify(EventProductCreated, product.ID, category.ID)
	return product, nil
}

// UpdateProduct replaces every client-settable field of a product. The
// image is replaced only when a file is attached; otherwise the stored
// value is kept.
func (s *ProductService) UpdateProduct(ctx context.Context, origin, id string, in ProductInput, image *UploadedFile) (*models.Product, error) {
	if err := ValidateProductID(id); err != nil {
		return nil, err
	}
	if _, err := s.ValidateCategoryRef(ctx, in.Category); err != nil {
		return nil, err
	}
	existing, err := s.ValidateProductExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if image != nil {
		if imageURL, err = s.images.BindSingle(ctx, origin, *image); err != nil {
			return nil, err
		}
	}

	product := in.toProduct()
	product.ID = id
	product.Image = imageURL
	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, persistence(err)
	}

	updated, err := s.ValidateProductExists(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.WithField("product_id", id).Info("Product updated")
	s.events.notify(EventProductUpdated, id, updated.CategoryID)
	return updated, nil
}

// UpdateGallery replaces the images of a product with the uploaded files,
// in upload order. No files clears the gallery.
func (s *ProductService) UpdateGallery(ctx context.Context, origin, id string, files []UploadedFile) (*models.Product, error) {
	if err := ValidateProductID(id); err != nil {
		return nil, err
	}
	if len(files) > s.images.MaxGalleryImages() {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyImages, len(files), s.images.MaxGalleryImages())
	}
	if _, err := s.ValidateProductExists(ctx, id); err != nil {
		return nil, err
	}

	urls, err := s.images.BindGallery(ctx, origin, files)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateImages(ctx, id, urls); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, persistence(err)
	}

	updated, err := s.ValidateProductExists(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"product_id": id, "images": len(urls)}).Info("Product gallery updated")
	s.events.notify(EventProductGalleryUpdated, id, updated.CategoryID)
	return updated, nil
}

// DeleteProduct removes a product. Removing an unknown id reports false
// without an error.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if err := ValidateProductID(id); err != nil {
		return false, err
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, persistence(err)
	}
	if removed {
		s.log.WithField("product_id", id).Info("Product deleted")
		s.events.notify(EventProductDeleted, id, "")
	}
	return removed, nil
}

// CountProducts returns the total number of products.
func (s *ProductService) CountProducts(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, persistence(err)
	}
	return count, nil
}

// GetFeaturedProducts returns at most limit featured products.
func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	}
	products, err := s.repo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, persistence(err)
	}
	return products, nil
}
