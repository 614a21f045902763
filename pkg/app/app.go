// Package app wires configuration and logging into the support escalation chain.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/supportchain/pkg/config"
	"github.com/amirasaad/supportchain/pkg/handler"
)

type App struct {
	Config *config.App
	Logger *slog.Logger
	Chain  *handler.Chain
}

// New builds the support chain described by cfg
func New(cfg *config.App, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var support *config.Support
	if cfg != nil {
		support = cfg.Support
	}

	chain, err := handler.NewChainBuilder(logger).BuildSupportChain(support)
	if err != nil {
		return nil, err
	}
	return &App{
		Config: cfg,
		Logger: logger,
		Chain:  chain,
	}, nil
}

// Dispatch routes a single request through the support chain
func (a *App) Dispatch(ctx context.Context, req handler.Request) handler.Outcome {
	return a.Chain.Handle(ctx, req)
}

// DispatchAll routes each request in order and returns the outcomes in the same order
func (a *App) DispatchAll(ctx context.Context, reqs []handler.Request) []handler.Outcome {
	outcomes := make([]handler.Outcome, 0, len(reqs))
	for _, req := range reqs {
		outcomes = append(outcomes, a.Dispatch(ctx, req))
	}
	return outcomes
}
