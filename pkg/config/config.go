package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Uploads  UploadsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Path string
}

type SessionConfig struct {
	Secret  string
	TTLDays int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type UploadsConfig struct {
	GCSBucket      string
	GCSCredentials string
	LocalDir       string
	LocalURLPrefix string
}

var AppConfig *Config

// ErrMissingDBPath means no record store location was configured.
// The process must not start without a store to connect to.
var ErrMissingDBPath = errors.New("DB_PATH is not set")

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4065"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", ""),
		},
		Session: SessionConfig{
			Secret:  getEnv("SESSION_SECRET", "default-secret-key"),
			TTLDays: getEnvAsInt("SESSION_TTL_DAYS", 14),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Uploads: UploadsConfig{
			GCSBucket:      getEnv("GCS_BUCKET", ""),
			GCSCredentials: getEnv("GCS_CREDENTIALS_FILE", ""),
			LocalDir:       getEnv("UPLOADS_DIR", "./web/static/uploads"),
			LocalURLPrefix: getEnv("UPLOADS_URL_PREFIX", "/static/uploads"),
		},
	}

	if cfg.Database.Path == "" {
		return ErrMissingDBPath
	}

	AppConfig = cfg
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
