package handler

import (
	"context"
	"log/slog"
)

// Action is the terminal step a handler runs when it consumes a request
type Action func(ctx context.Context, req Request)

// FuncHandler is a handler assembled from a Matcher and an optional Action.
// It covers custom variants that do not need their own type.
type FuncHandler struct {
	BaseHandler
	match  Matcher
	action Action
	logger *slog.Logger
}

// NewFuncHandler creates a handler that consumes requests accepted by match.
// A nil match never consumes; a nil action consumes without side effects.
func NewFuncHandler(name string, match Matcher, action Action, logger *slog.Logger) *FuncHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FuncHandler{
		BaseHandler: BaseHandler{name: name},
		match:       match,
		action:      action,
		logger:      logger,
	}
}

// Handle runs the action if the request matches, otherwise forwards it
func (h *FuncHandler) Handle(ctx context.Context, req Request) Outcome {
	ctx, id := ensureDispatch(ctx)

	if h.match == nil || !h.match(req) {
		h.logger.Debug("FuncHandler: forwarding", "handler", h.name, "request", req, "dispatchID", id)
		return Forward(ctx, h.next, req, h.name)
	}

	if h.action != nil {
		h.action(ctx, req)
	}
	h.logger.Info("FuncHandler: request resolved", "handler", h.name, "request", req, "dispatchID", id)
	return resolved(ctx, h.name)
}
