package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(".env")
	if err != nil {
		newLogger("info").Fatalf("Failed to load configuration: %v", err)
	}
	log := newLogger(cfg.LogLevel)

	// --- Persistence ---
	products, categories, closeDB, err := openRepositories(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	defer closeDB()

	if cfg.SeedData {
		seedCatalog(context.Background(), products, categories, log)
	}

	// --- Upload storage ---
	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.StorageBackend, err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange}, log)
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Info("RABBITMQ_URL is not set, product events are disabled")
	}

	app := newApp(appDeps{
		cfg:        cfg,
		log:        log,
		products:   products,
		categories: categories,
		store:      store,
		mq:         mqClient,
	})

	// --- Start HTTP Server ---
	log.WithFields(logrus.Fields{
		"port":    cfg.AppPort,
		"db":      cfg.DBDriver,
		"storage": store.Backend(),
	}).Info("Starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}
