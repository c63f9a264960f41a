package services

import (
	"fmt"
	"io"

	"catalog/internal/models"
	"catalog/pkg/validator"
)

// ProductInput is every field a client may set on create or update.
// The category is checked by the validation gate, not by struct tags, so
// a bad reference surfaces as ErrInvalidCategory.
type ProductInput struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price" validate:"gte=0"`
	Category        string  `json:"category"`
	CountInStock    int     `json:"countInStock" validate:"gte=0,lte=255"`
	Rating          float64 `json:"rating" validate:"gte=0"`
	NumReviews      int     `json:"numReviews" validate:"gte=0"`
	IsFeatured      bool    `json:"isFeatured"`
}

// Validate applies the field rules and reports the first failure.
func (in ProductInput) Validate() error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on '%s'", ErrInvalidInput, first.FailedField, first.Tag)
	}
	return nil
}

// toProduct copies the input onto a new product record.
func (in ProductInput) toProduct() *models.Product {
	return &models.Product{
		Name:            in.Name,
		Description:     in.Description,
		RichDescription: in.RichDescription,
		Brand:           in.Brand,
		Price:           in.Price,
		CategoryID:      in.Category,
		CountInStock:    in.CountInStock,
		Rating:          in.Rating,
		NumReviews:      in.NumReviews,
		IsFeatured:      in.IsFeatured,
	}
}

// UploadedFile is a file attached to the current request. It only lives for
// the duration of the request; the bytes are handed to storage by the binder.
type UploadedFile struct {
	OriginalName string
	MimeType     string
	Size         int64
	Open         func() (io.ReadCloser, error)
}
