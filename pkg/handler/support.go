package handler

import (
	"context"
	"log/slog"
)

// Tier represents a support escalation level
type Tier string

// Tier constants define the built-in support levels, lowest first.
const (
	TierBasic    Tier = "basic"
	TierAdvanced Tier = "advanced"
	TierExpert   Tier = "expert"
)

// Default keywords claimed by each tier.
const (
	DefaultBasicKeyword    = "básico"
	DefaultAdvancedKeyword = "avanzado"
	DefaultExpertKeyword   = "experto"
)

// SupportHandler resolves requests equal to its tier keyword and escalates
// everything else to the next tier. A terminal tier never escalates: a miss
// ends the dispatch as unhandled even when a successor is linked.
type SupportHandler struct {
	BaseHandler
	tier     Tier
	keyword  string
	terminal bool
	logger   *slog.Logger
}

// NewBasicSupport creates the first-line support handler
func NewBasicSupport(keyword string, logger *slog.Logger) *SupportHandler {
	return newSupportHandler("BasicSupport", TierBasic, keyword, false, logger)
}

// NewAdvancedSupport creates the second-line support handler
func NewAdvancedSupport(keyword string, logger *slog.Logger) *SupportHandler {
	return newSupportHandler("AdvancedSupport", TierAdvanced, keyword, false, logger)
}

// NewExpertSupport creates the last-line support handler. It is terminal.
func NewExpertSupport(keyword string, logger *slog.Logger) *SupportHandler {
	return newSupportHandler("ExpertSupport", TierExpert, keyword, true, logger)
}

func newSupportHandler(name string, tier Tier, keyword string, terminal bool, logger *slog.Logger) *SupportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SupportHandler{
		BaseHandler: BaseHandler{name: name},
		tier:        tier,
		keyword:     keyword,
		terminal:    terminal,
		logger:      logger,
	}
}

// Tier returns the support level of the handler
func (h *SupportHandler) Tier() Tier {
	return h.tier
}

// Terminal reports whether the handler ends the dispatch on a miss
func (h *SupportHandler) Terminal() bool {
	return h.terminal
}

// Keyword returns the request this handler resolves
func (h *SupportHandler) Keyword() string {
	return h.keyword
}

// Handle resolves the request if it matches the tier keyword, otherwise escalates it
func (h *SupportHandler) Handle(ctx context.Context, req Request) Outcome {
	ctx, id := ensureDispatch(ctx)
	logger := h.logger.With("handler", h.name, "tier", h.tier, "request", req, "dispatchID", id)

	if string(req) == h.keyword {
		logger.Info("SupportHandler: request resolved")
		return resolved(ctx, h.name)
	}

	if h.terminal {
		logger.Warn("SupportHandler: nothing left to do, request unresolved")
		return Forward(ctx, nil, req, h.name)
	}
	if h.next == nil {
		logger.Warn("SupportHandler: no tier left to escalate to")
	} else {
		logger.Debug("SupportHandler: escalating", "to", h.next.Name())
	}
	return Forward(ctx, h.next, req, h.name)
}
