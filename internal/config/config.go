package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the server.
type Config struct {
	Port               string
	StorageDir         string
	StaticDir          string
	CORSAllowedOrigins []string
}

// Load reads configuration from a .env file when present, falling back to
// plain environment variables with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		StorageDir: getEnv("STORAGE_DIR", "storage"),
		StaticDir:  getEnv("STATIC_DIR", ""),
	}

	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
