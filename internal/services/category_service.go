package services

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/validator"

	"github.com/google/uuid"
)

// CategoryService exposes the categories products reference.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
		}
		return nil, persistence(err)
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, errs[0].FailedField, errs[0].Tag)
	}
	category.ID = ""
	if err := s.repo.Create(ctx, category); err != nil {
		return persistence(err)
	}
	return nil
}

// DeleteCategory removes a category and reports whether it existed.
// Products still referencing it keep their dangling id.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, persistence(err)
	}
	return removed, nil
}
