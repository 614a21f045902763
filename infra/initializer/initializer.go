package initializer

import (
	"fmt"

	"github.com/amirasaad/supportchain/pkg/app"
	"github.com/amirasaad/supportchain/pkg/config"
)

// Initialize loads configuration, installs the process logger and builds the app.
// Without envFiles the candidates come from config.EnvFiles.
func Initialize(envFiles ...string) (*app.App, error) {
	if len(envFiles) == 0 {
		envFiles = config.EnvFiles()
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := setupLogger(cfg.Log)

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build support chain: %w", err)
	}
	logger.Debug("Application initialized", "env", cfg.Env, "handlers", a.Chain.Names())
	return a, nil
}
