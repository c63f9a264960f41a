package services

import "errors"

var (
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrMissingImage         = errors.New("no image in the request")
	ErrUnsupportedImageType = errors.New("invalid image type, only png, jpeg and jpg are allowed")
	ErrTooManyImages        = errors.New("too many images in the request")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownField         = errors.New("unknown field")
	ErrPersistence          = errors.New("the product cannot be saved")
)
