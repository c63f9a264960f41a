package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// It keeps insertion order so listings match what a store scan would return.
type MemoryProductRepository struct {
	categories CategoryRepository
	products   map[string]models.Product
	order      []string
	mu         sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
// categories is used to load the Category of every product read back.
func NewMemoryProductRepository(categories CategoryRepository) *MemoryProductRepository {
	return &MemoryProductRepository{
		categories: categories,
		products:   make(map[string]models.Product),
	}
}

// populate returns a detached copy of p with its Category loaded.
func (r *MemoryProductRepository) populate(ctx context.Context, p models.Product) models.Product {
	p.Images = slices.Clone(p.Images)
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Category = nil
	if category, err := r.categories.GetByID(ctx, p.CategoryID); err == nil {
		p.Category = category
	}
	return p
}

func (r *MemoryProductRepository) GetAll(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.products[id]
		if len(filter.CategoryIDs) > 0 && !slices.Contains(filter.CategoryIDs, p.CategoryID) {
			continue
		}
		productList = append(productList, r.populate(ctx, p))
	}
	return productList, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product = r.populate(ctx, product)
	return &product, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	now := time.Now()
	product.DateCreated = now
	product.UpdatedAt = now

	stored := *product
	stored.Category = nil
	stored.Images = slices.Clone(product.Images)
	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = stored
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.RichDescription = product.RichDescription
	existing.Image = product.Image
	existing.Brand = product.Brand
	existing.Price = product.Price
	existing.CategoryID = product.CategoryID
	existing.CountInStock = product.CountInStock
	existing.Rating = product.Rating
	existing.NumReviews = product.NumReviews
	existing.IsFeatured = product.IsFeatured
	existing.UpdatedAt = time.Now()
	r.products[product.ID] = existing
	return nil
}

func (r *MemoryProductRepository) UpdateImages(ctx context.Context, id string, images []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	existing.Images = slices.Clone(images)
	if existing.Images == nil {
		existing.Images = []string{}
	}
	existing.UpdatedAt = time.Now()
	r.products[id] = existing
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := []models.Product{}
	for _, id := range r.order {
		if len(featured) >= limit {
			break
		}
		if p := r.products[id]; p.IsFeatured {
			featured = append(featured, r.populate(ctx, p))
		}
	}
	return featured, nil
}
