package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	imageField   = "image"
	galleryField = "images"
)

// productFields are the form fields accepted on create and update.
var productFields = map[string]bool{
	"name": true, "description": true, "richDescription": true, "brand": true,
	"price": true, "category": true, "countInStock": true, "rating": true,
	"numReviews": true, "isFeatured": true,
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// parseProductRequest reads a typed ProductInput and the optional single
// image from a multipart or JSON body. Unknown fields are rejected.
func parseProductRequest(c *fiber.Ctx) (services.ProductInput, *services.UploadedFile, error) {
	if !isMultipart(c) {
		in, err := decodeProductJSON(c.Body())
		return in, nil, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return services.ProductInput{}, nil, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	for field := range form.File {
		if field != imageField {
			return services.ProductInput{}, nil, fmt.Errorf("%w: file field %q", services.ErrUnknownField, field)
		}
	}
	in, err := decodeProductForm(form.Value)
	if err != nil {
		return services.ProductInput{}, nil, err
	}

	var image *services.UploadedFile
	if files := form.File[imageField]; len(files) > 0 {
		if len(files) > 1 {
			return services.ProductInput{}, nil, fmt.Errorf("%w: only one %q file is accepted", services.ErrTooManyImages, imageField)
		}
		f := uploadedFile(files[0])
		image = &f
	}
	return in, image, nil
}

// parseGalleryRequest returns the files of the images field in upload order.
func parseGalleryRequest(c *fiber.Ctx) ([]services.UploadedFile, error) {
	if !isMultipart(c) {
		return []services.UploadedFile{}, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	for field := range form.File {
		if field != galleryField {
			return nil, fmt.Errorf("%w: file field %q", services.ErrUnknownField, field)
		}
	}
	if len(form.Value) > 0 {
		return nil, fmt.Errorf("%w: gallery update accepts only %q files", services.ErrUnknownField, galleryField)
	}
	headers := form.File[galleryField]
	files := make([]services.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadedFile(fh))
	}
	return files, nil
}

func uploadedFile(fh *multipart.FileHeader) services.UploadedFile {
	return services.UploadedFile{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get(fiber.HeaderContentType),
		Size:         fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func decodeProductJSON(body []byte) (services.ProductInput, error) {
	var in services.ProductInput
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return in, fmt.Errorf("%w: %s", services.ErrUnknownField, strings.TrimPrefix(err.Error(), "json: unknown field "))
		}
		return in, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}
	return in, nil
}

func decodeProductForm(values map[string][]string) (services.ProductInput, error) {
	var in services.ProductInput
	for field, vals := range values {
		if !productFields[field] {
			return in, fmt.Errorf("%w: %q", services.ErrUnknownField, field)
		}
		if len(vals) == 0 {
			continue
		}
		v := strings.TrimSpace(vals[0])
		var err error
		switch field {
		case "name":
			in.Name = vals[0]
		case "description":
			in.Description = vals[0]
		case "richDescription":
			in.RichDescription = vals[0]
		case "brand":
			in.Brand = vals[0]
		case "category":
			in.Category = v
		case "price":
			in.Price, err = parseFloat(v)
		case "rating":
			in.Rating, err = parseFloat(v)
		case "countInStock":
			in.CountInStock, err = parseInt(v)
		case "numReviews":
			in.NumReviews, err = parseInt(v)
		case "isFeatured":
			in.IsFeatured, err = parseBool(v)
		}
		if err != nil {
			return in, fmt.Errorf("%w: field '%s': %v", services.ErrInvalidInput, field, err)
		}
	}
	return in, nil
}

func parseFloat(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func parseInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// splitCategories turns "a, b,,c" into [a b c].
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

var errBadCount = errors.New("count must be a non-negative integer")
