package main

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/database"
	"catalog/pkg/rabbitmq"
	"catalog/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// appDeps are the collaborators the HTTP app is built from.
type appDeps struct {
	cfg        *config.Config
	log        *logrus.Logger
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	store      storage.Storage
	mq         *rabbitmq.Client // nil when events are disabled
}

// newApp wires services and handlers into a Fiber app.
func newApp(d appDeps) *fiber.App {
	uploadCfg := services.DefaultUploadConfig()
	uploadCfg.UploadPath = d.cfg.UploadPath
	uploadCfg.MaxGalleryImages = d.cfg.MaxGalleryImages

	var publisher services.EventPublisher
	if d.mq != nil {
		publisher = d.mq
	}

	binder := services.NewImageBinder(uploadCfg, d.store, d.log)
	productService := services.NewProductService(d.products, d.categories, binder, publisher, d.cfg.RabbitMQExchange, d.log)
	categoryService := services.NewCategoryService(d.categories)

	productHandler := handlers.NewProductHandler(productService, d.log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, d.log)
	uploadHandler := handlers.NewUploadHandler(d.store, d.log)

	app := fiber.New(fiber.Config{
		AppName:      "Product Catalog",
		BodyLimit:    d.cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(d.log),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(d.log))

	apiV1 := app.Group(d.cfg.APIPrefix)
	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	uploadHandler.RegisterRoutes(app, d.cfg.UploadPath)

	app.Get("/health", func(c *fiber.Ctx) error {
		mqStatus := "disabled"
		if d.mq != nil {
			mqStatus = "disconnected"
			if d.mq.IsConnected() {
				mqStatus = "connected"
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitmq": mqStatus,
			"storage":  d.store.Backend(),
		})
	})

	return app
}

// newLogger builds the JSON logrus logger used across the service.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// openRepositories returns the repositories for the configured driver and a
// function releasing the underlying connection.
func openRepositories(cfg *config.Config, log *logrus.Logger) (repositories.ProductRepository, repositories.CategoryRepository, func(), error) {
	if cfg.DBDriver == "memory" {
		categories := repositories.NewMemoryCategoryRepository()
		return repositories.NewMemoryProductRepository(categories), categories, func() {}, nil
	}

	db, err := database.Connect(database.Config{Driver: cfg.DBDriver, DSN: cfg.DatabaseDSN}, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return repositories.NewGORMProductRepository(db), repositories.NewGORMCategoryRepository(db), closeDB, nil
}

// openStorage returns the configured upload backend.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == "minio" {
		return storage.NewMinIOStorage(storage.MinIOConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
			Prefix:    cfg.UploadPath,
		})
	}
	return storage.NewLocalStorage(afero.NewOsFs(), cfg.UploadDir)
}

// seedCatalog populates an empty catalog with a few categories and products.
func seedCatalog(ctx context.Context, products repositories.ProductRepository, categories repositories.CategoryRepository, log *logrus.Logger) {
	count, err := products.Count(ctx)
	if err != nil || count > 0 {
		return
	}

	seed := []struct {
		category models.Category
		products []models.Product
	}{
		{
			category: models.Category{Name: "Electronics", Icon: "icon-electronics", Color: "#3B82F6"},
			products: []models.Product{
				{Name: "Laptop", Description: "High performance laptop", Brand: "Acme", Price: 1200.00, CountInStock: 10, IsFeatured: true},
				{Name: "Keyboard", Description: "Mechanical keyboard", Brand: "Acme", Price: 75.00, CountInStock: 25},
			},
		},
		{
			category: models.Category{Name: "Accessories", Icon: "icon-accessories", Color: "#10B981"},
			products: []models.Product{
				{Name: "Mouse", Description: "Ergonomic wireless mouse", Brand: "Acme", Price: 25.00, CountInStock: 50, IsFeatured: true},
			},
		},
	}

	for _, s := range seed {
		category := s.category
		if err := categories.Create(ctx, &category); err != nil {
			log.WithError(err).Warnf("Error seeding category %s", category.Name)
			continue
		}
		for i := range s.products {
			p := s.products[i]
			p.CategoryID = category.ID
			if err := products.Create(ctx, &p); err != nil {
				log.WithError(err).Warnf("Error seeding product %s", p.Name)
				continue
			}
			log.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Info("Seeded product")
		}
	}
}
