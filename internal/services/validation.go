package services

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/google/uuid"
)

// ValidateProductID checks the identifier has the shape the store uses.
// It never touches the store.
func ValidateProductID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidProductID, id)
	}
	return nil
}

// ValidateCategoryRef returns the referenced category. A malformed or unknown
// id is ErrInvalidCategory; a store failure is ErrPersistence.
func (s *ProductService) ValidateCategoryRef(ctx context.Context, categoryID string) (*models.Category, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return category, nil
}

// ValidateProductExists returns the current record for id.
func (s *ProductService) ValidateProductExists(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return product, nil
}
