package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
// If .env file is not found, it logs and continues
func LoadEnv(logger *slog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
}

// GetEnv retrieves an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsEnvSet checks if an environment variable is set
func IsEnvSet(key string) bool {
	return os.Getenv(key) != ""
}

// EnvFiles returns the .env candidates for the current environment, most
// specific first: ENV_FILE when set, then .env.<APP_ENV>, then .env.
func EnvFiles() []string {
	var files []string
	if IsEnvSet("ENV_FILE") {
		files = append(files, os.Getenv("ENV_FILE"))
	}
	return append(files, ".env."+GetEnv("APP_ENV", "development"), ".env")
}
