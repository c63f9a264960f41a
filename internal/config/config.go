package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	AppPort   string
	APIPrefix string
	LogLevel  string
	SeedData  bool

	DBDriver    string
	DatabaseDSN string

	StorageBackend   string
	UploadDir        string
	UploadPath       string
	MaxGalleryImages int
	BodyLimitMB      int

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	RabbitMQURL      string
	RabbitMQExchange string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "catalog.db")
	v.SetDefault("STORAGE_BACKEND", "local")
	v.SetDefault("UPLOAD_DIR", "public/uploads")
	v.SetDefault("UPLOAD_PATH", "public/uploads")
	v.SetDefault("MAX_GALLERY_IMAGES", 10)
	v.SetDefault("BODY_LIMIT_MB", 32)
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "catalog-uploads")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "catalog")
}

// Load reads envFile (if it exists) and then the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		APIPrefix:        strings.TrimRight(v.GetString("API_PREFIX"), "/"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		SeedData:         v.GetBool("SEED_DATA"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		StorageBackend:   strings.ToLower(v.GetString("STORAGE_BACKEND")),
		UploadDir:        v.GetString("UPLOAD_DIR"),
		UploadPath:       strings.Trim(v.GetString("UPLOAD_PATH"), "/"),
		MaxGalleryImages: v.GetInt("MAX_GALLERY_IMAGES"),
		BodyLimitMB:      v.GetInt("BODY_LIMIT_MB"),
		MinIOEndpoint:    v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey:   v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:   v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:      v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:      v.GetBool("MINIO_USE_SSL"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite, postgres or memory, got %q", c.DBDriver)
	}
	switch c.StorageBackend {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be local or minio, got %q", c.StorageBackend)
	}
	if c.UploadPath == "" {
		return fmt.Errorf("UPLOAD_PATH must not be empty")
	}
	if c.MaxGalleryImages <= 0 {
		return fmt.Errorf("MAX_GALLERY_IMAGES must be positive, got %d", c.MaxGalleryImages)
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", c.BodyLimitMB)
	}
	return nil
}
