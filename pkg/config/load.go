package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		LoadEnv(logger)
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}

		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using system environment variables")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"log_format", cfg.Log.Format,
		"log_level", cfg.Log.Level,
		"support_basic", cfg.Support.BasicKeyword,
		"support_advanced", cfg.Support.AdvancedKeyword,
		"support_expert", cfg.Support.ExpertKeyword,
	)
	return &cfg, nil
}
