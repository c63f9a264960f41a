package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateImages(ctx context.Context, id string, images []string) error {
	args := m.Called(ctx, id, images)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPublisher records published product events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

const (
	origin    = "http://localhost:8080"
	uploadDir = "uploads"
)

type fixture struct {
	repo       *MockProductRepository
	categories *MockCategoryRepository
	publisher  *MockPublisher
	fs         afero.Fs
	service    *services.ProductService
	category   *models.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := storage.NewLocalStorage(fs, uploadDir)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		repo:       new(MockProductRepository),
		categories: new(MockCategoryRepository),
		publisher:  new(MockPublisher),
		fs:         fs,
		category:   &models.Category{ID: uuid.NewString(), Name: "Shoes"},
	}
	binder := services.NewImageBinder(services.DefaultUploadConfig(), store, log)
	f.service = services.NewProductService(f.repo, f.categories, binder, f.publisher, "catalog", log)
	return f
}

func (f *fixture) storedFiles(t *testing.T) int {
	t.Helper()
	entries, err := afero.ReadDir(f.fs, uploadDir)
	require.NoError(t, err)
	return len(entries)
}

func (f *fixture) knownCategory() {
	f.categories.On("GetByID", mock.Anything, f.category.ID).Return(f.category, nil)
}

func imageFile(name, mimeType string) *services.UploadedFile {
	content := "image-bytes-of-" + name
	return &services.UploadedFile{
		OriginalName: name,
		MimeType:     mimeType,
		Size:         int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func validInput(categoryID string) services.ProductInput {
	return services.ProductInput{
		Name:            "Runner",
		Description:     "Light running shoe",
		RichDescription: "<p>Light</p>",
		Brand:           "Acme",
		Price:           59.9,
		Category:        categoryID,
		CountInStock:    12,
		Rating:          4.5,
		NumReviews:      8,
		IsFeatured:      true,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = "generated-id"
		}).
		Return(nil).Once()
	f.publisher.On("Publish", "catalog", services.EventProductCreated, mock.Anything).Return(nil).Once()

	product, err := f.service.CreateProduct(context.Background(), origin, validInput(f.category.ID), imageFile("summer shoe.png", "image/png"))

	require.NoError(t, err)
	assert.Equal(t, "generated-id", product.ID)
	assert.Equal(t, "Runner", product.Name)
	assert.Equal(t, f.category, product.Category)
	assert.NotNil(t, product.Images)
	assert.Empty(t, product.Images)
	assert.True(t, strings.HasPrefix(product.Image, origin+"/public/uploads/summer-shoe-"), product.Image)
	assert.True(t, strings.HasSuffix(product.Image, ".png"), product.Image)
	assert.Equal(t, 1, f.storedFiles(t))
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_InvalidCategory(t *testing.T) {
	f := newFixture(t)
	unknown := uuid.NewString()
	f.categories.On("GetByID", mock.Anything, unknown).Return(nil, repositories.ErrNotFound).Once()

	for _, categoryID := range []string{"not-an-id", "", unknown} {
		_, err := f.service.CreateProduct(context.Background(), origin, validInput(categoryID), imageFile("a.png", "image/png"))
		assert.ErrorIs(t, err, services.ErrInvalidCategory, "category %q", categoryID)
	}

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.storedFiles(t))
}

func TestProductService_CreateProduct_CategoryStoreFailure(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	f.categories.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection refused")).Once()

	_, err := f.service.CreateProduct(context.Background(), origin, validInput(id), imageFile("a.png", "image/png"))

	assert.ErrorIs(t, err, services.ErrPersistence)
	assert.NotErrorIs(t, err, services.ErrInvalidCategory)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_MissingImage(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()

	_, err := f.service.CreateProduct(context.Background(), origin, validInput(f.category.ID), nil)

	assert.ErrorIs(t, err, services.ErrMissingImage)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.storedFiles(t))
}

func TestProductService_CreateProduct_UnsupportedImageType(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()

	_, err := f.service.CreateProduct(context.Background(), origin, validInput(f.category.ID), imageFile("anim.gif", "image/gif"))

	assert.ErrorIs(t, err, services.ErrUnsupportedImageType)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.storedFiles(t))
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()

	in := validInput(f.category.ID)
	in.Name = ""
	_, err := f.service.CreateProduct(context.Background(), origin, in, imageFile("a.png", "image/png"))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name")

	in = validInput(f.category.ID)
	in.CountInStock = 256
	_, err = f.service.CreateProduct(context.Background(), origin, in, imageFile("a.png", "image/png"))
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.Contains(t, err.Error(), "countInStock")

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.storedFiles(t))
}

func TestProductService_CreateProduct_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	product, err := f.service.CreateProduct(context.Background(), origin, validInput(f.category.ID), imageFile("a.jpg", "image/jpg"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(product.Image, ".jpg"))
	f.publisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_WithoutPublisher(t *testing.T) {
	store, err := storage.NewLocalStorage(afero.NewMemMapFs(), uploadDir)
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	category := &models.Category{ID: uuid.NewString()}
	categories.On("GetByID", mock.Anything, category.ID).Return(category, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	service := services.NewProductService(repo, categories, services.NewImageBinder(services.DefaultUploadConfig(), store, log), nil, "", log)
	_, err = service.CreateProduct(context.Background(), origin, validInput(category.ID), imageFile("a.png", "image/png"))
	assert.NoError(t, err)
}

func TestProductService_GetProductByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.NewString()
	expected := &models.Product{ID: id, Name: "Runner", Category: f.category}

	// Test successful retrieval
	f.repo.On("GetByID", mock.Anything, id).Return(expected, nil).Once()
	product, err := f.service.GetProductByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Test product not found
	missing := uuid.NewString()
	f.repo.On("GetByID", mock.Anything, missing).Return(nil, fmt.Errorf("product with ID %s: %w", missing, repositories.ErrNotFound)).Once()
	product, err = f.service.GetProductByID(ctx, missing)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, product)

	// Test store failure
	broken := uuid.NewString()
	f.repo.On("GetByID", mock.Anything, broken).Return(nil, errors.New("timeout")).Once()
	_, err = f.service.GetProductByID(ctx, broken)
	assert.ErrorIs(t, err, services.ErrPersistence)

	// Test malformed id never reaches the store
	_, err = f.service.GetProductByID(ctx, "42")
	assert.ErrorIs(t, err, services.ErrInvalidProductID)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, "42")
	f.repo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ShortCircuits(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid product id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.UpdateProduct(ctx, origin, "bad-id", validInput("also-bad"), nil)
		assert.ErrorIs(t, err, services.ErrInvalidProductID)
		f.categories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("invalid category", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.UpdateProduct(ctx, origin, uuid.NewString(), validInput("bad-category"), imageFile("a.png", "image/png"))
		assert.ErrorIs(t, err, services.ErrInvalidCategory)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.storedFiles(t))
	})

	t.Run("missing product", func(t *testing.T) {
		f := newFixture(t)
		f.knownCategory()
		id := uuid.NewString()
		f.repo.On("GetByID", mock.Anything, id).Return(nil, repositories.ErrNotFound).Once()

		_, err := f.service.UpdateProduct(ctx, origin, id, validInput(f.category.ID), imageFile("a.png", "image/png"))
		assert.ErrorIs(t, err, services.ErrProductNotFound)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.storedFiles(t))
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)
		f.knownCategory()
		id := uuid.NewString()
		f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()

		in := validInput(f.category.ID)
		in.Price = -1
		_, err := f.service.UpdateProduct(ctx, origin, id, in, nil)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct_KeepsImageAndReplacesFields(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()
	id := uuid.NewString()
	existing := &models.Product{
		ID:          id,
		Name:        "Old",
		Description: "Old description",
		Image:       origin + "/public/uploads/old-1-abcdef12.png",
		Images:      []string{"g1"},
		CategoryID:  f.category.ID,
		IsFeatured:  true,
	}

	var saved *models.Product
	f.repo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	f.repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Product) }).
		Return(nil).Once()
	f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id, Name: "New", Image: existing.Image, Images: existing.Images}, nil).Once()
	f.publisher.On("Publish", "catalog", services.EventProductUpdated, mock.Anything).Return(nil).Once()

	in := services.ProductInput{Name: "New", Category: f.category.ID, CountInStock: 3}
	product, err := f.service.UpdateProduct(context.Background(), origin, id, in, nil)

	require.NoError(t, err)
	assert.Equal(t, "New", product.Name)
	require.NotNil(t, saved)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, existing.Image, saved.Image)
	// Fields absent from the request are reset.
	assert.Equal(t, "", saved.Description)
	assert.False(t, saved.IsFeatured)
	assert.Equal(t, 3, saved.CountInStock)
	assert.Equal(t, 0, f.storedFiles(t))
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ReplacesImage(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()
	id := uuid.NewString()
	existing := &models.Product{ID: id, Image: "http://old/image.png", CategoryID: f.category.ID}

	var saved *models.Product
	f.repo.On("GetByID", mock.Anything, id).Return(existing, nil).Twice()
	f.repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Product) }).
		Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.UpdateProduct(context.Background(), origin, id, validInput(f.category.ID), imageFile("new pic.jpeg", "image/jpeg"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.Image, origin+"/public/uploads/new-pic-"), saved.Image)
	assert.True(t, strings.HasSuffix(saved.Image, ".jpeg"))
	assert.Equal(t, 1, f.storedFiles(t))
}

func TestProductService_UpdateProduct_UpdateRacesDelete(t *testing.T) {
	f := newFixture(t)
	f.knownCategory()
	id := uuid.NewString()
	f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()
	f.repo.On("Update", mock.Anything, mock.Anything).Return(repositories.ErrNotFound).Once()

	_, err := f.service.UpdateProduct(context.Background(), origin, id, validInput(f.category.ID), nil)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateGallery(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()

	var saved []string
	f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id}, nil)
	f.repo.On("UpdateImages", mock.Anything, id, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]string) }).
		Return(nil).Once()
	f.publisher.On("Publish", "catalog", services.EventProductGalleryUpdated, mock.Anything).Return(nil).Once()

	files := []services.UploadedFile{*imageFile("front.png", "image/png"), *imageFile("back.jpeg", "image/jpeg")}
	_, err := f.service.UpdateGallery(context.Background(), origin, id, files)

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.True(t, strings.HasPrefix(saved[0], origin+"/public/uploads/front-"))
	assert.True(t, strings.HasPrefix(saved[1], origin+"/public/uploads/back-"))
	assert.Equal(t, 2, f.storedFiles(t))
	f.publisher.AssertExpectations(t)
}

func TestProductService_UpdateGallery_EmptyClearsAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	emptySlice := mock.MatchedBy(func(images []string) bool { return images != nil && len(images) == 0 })

	f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id, Images: []string{}}, nil)
	f.repo.On("UpdateImages", mock.Anything, id, emptySlice).Return(nil).Twice()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < 2; i++ {
		product, err := f.service.UpdateGallery(context.Background(), origin, id, nil)
		require.NoError(t, err)
		assert.Empty(t, product.Images)
	}
	f.repo.AssertExpectations(t)
	assert.Equal(t, 0, f.storedFiles(t))
}

func TestProductService_UpdateGallery_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("too many files", func(t *testing.T) {
		f := newFixture(t)
		files := make([]services.UploadedFile, 11)
		for i := range files {
			files[i] = *imageFile(fmt.Sprintf("img%d.png", i), "image/png")
		}
		_, err := f.service.UpdateGallery(ctx, origin, uuid.NewString(), files)
		assert.ErrorIs(t, err, services.ErrTooManyImages)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.storedFiles(t))
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.NewString()
		f.repo.On("GetByID", mock.Anything, id).Return(nil, repositories.ErrNotFound).Once()
		_, err := f.service.UpdateGallery(ctx, origin, id, []services.UploadedFile{*imageFile("a.png", "image/png")})
		assert.ErrorIs(t, err, services.ErrProductNotFound)
		f.repo.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.storedFiles(t))
	})

	t.Run("one unsupported file rejects the set", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.NewString()
		f.repo.On("GetByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()
		files := []services.UploadedFile{*imageFile("a.png", "image/png"), *imageFile("b.bmp", "image/bmp")}
		_, err := f.service.UpdateGallery(ctx, origin, id, files)
		assert.ErrorIs(t, err, services.ErrUnsupportedImageType)
		f.repo.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.storedFiles(t))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.UpdateGallery(ctx, origin, "xyz", nil)
		assert.ErrorIs(t, err, services.ErrInvalidProductID)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.NewString()

	f.repo.On("Delete", mock.Anything, id).Return(true, nil).Once()
	f.repo.On("Delete", mock.Anything, id).Return(false, nil).Once()
	f.publisher.On("Publish", "catalog", services.EventProductDeleted, mock.Anything).Return(nil).Once()

	removed, err := f.service.DeleteProduct(ctx, id)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.service.DeleteProduct(ctx, id)
	assert.NoError(t, err)
	assert.False(t, removed)

	_, err = f.service.DeleteProduct(ctx, "nope")
	assert.ErrorIs(t, err, services.ErrInvalidProductID)

	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestProductService_CountAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	filter := repositories.ProductFilter{CategoryIDs: []string{"a", "b"}}

	f.repo.On("Count", mock.Anything).Return(int64(7), nil).Once()
	f.repo.On("GetAll", mock.Anything, filter).Return([]models.Product{{ID: "1"}}, nil).Once()
	f.repo.On("GetAll", mock.Anything, repositories.ProductFilter{}).Return(nil, errors.New("db down")).Once()

	count, err := f.service.CountProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)

	products, err := f.service.GetAllProducts(ctx, []string{"a", "b"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = f.service.GetAllProducts(ctx, nil)
	assert.ErrorIs(t, err, services.ErrPersistence)
	f.repo.AssertExpectations(t)
}

func TestProductService_GetFeaturedProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.On("GetFeatured", mock.Anything, 0).Return([]models.Product{}, nil).Once()
	f.repo.On("GetFeatured", mock.Anything, 2).Return([]models.Product{{ID: "1"}, {ID: "2"}}, nil).Once()

	products, err := f.service.GetFeaturedProducts(ctx, 0)
	assert.NoError(t, err)
	assert.Empty(t, products)

	products, err = f.service.GetFeaturedProducts(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = f.service.GetFeaturedProducts(ctx, -1)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	f.repo.AssertExpectations(t)
}
