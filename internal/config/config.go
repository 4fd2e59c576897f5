package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. Every field has a default so the
// service starts with no environment at all.
type Config struct {
	HTTPPort        string
	ProductsFile    string
	CategoriesFile  string
	CredentialsFile string
	ModesFile       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, honoring an optional .env
// file first. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ProductsFile:    getEnv("PRODUCTS_FILE", "products.json"),
		CategoriesFile:  getEnv("CATEGORIES_FILE", "categories.json"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", "creds.json"),
		ModesFile:       getEnv("MODES_FILE", "modes.json"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
