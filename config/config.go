package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	LogLevel        string
	CatalogDBPath   string
	MigrationsPath  string
	AdvisorURL      string
	AdvisorTimeout  time.Duration
	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if fallback != "" {
		log.Printf("Warning: Environment variable %s not set, using default value: %s\n", key, fallback)
	} else {
		log.Printf("Warning: Environment variable %s not set and no default value provided\n", key)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: Environment variable %s is not a valid duration (%q), using default: %s\n", key, value, fallback)
		return fallback
	}
	return d
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("Warning: .env file not found, using environment variables or defaults.")
		} else {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "catalog.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/catalog/repository/migrations"),
		AdvisorURL:      getEnv("ADVISOR_URL", "http://localhost:9090/recommendations"),
		AdvisorTimeout:  getEnvDuration("ADVISOR_TIMEOUT", 10*time.Second),
		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
