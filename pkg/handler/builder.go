package handler

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/supportchain/pkg/config"
)

// ChainBuilder builds chains from an ordered list of handlers
type ChainBuilder struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewChainBuilder creates a new chain builder
func NewChainBuilder(logger *slog.Logger) *ChainBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChainBuilder{logger: logger}
}

// Add appends handlers to the chain, in order. Returns the builder for chaining.
func (b *ChainBuilder) Add(handlers ...Handler) *ChainBuilder {
	b.handlers = append(b.handlers, handlers...)
	return b
}

// Build links the handlers in the order they were added and freezes them
// into a Chain. Any successor a handler had before Build is replaced.
func (b *ChainBuilder) Build() (*Chain, error) {
	if len(b.handlers) == 0 {
		return nil, ErrEmptyChain
	}

	seen := make(map[Handler]int, len(b.handlers))
	for i, h := range b.handlers {
		if h == nil {
			return nil, fmt.Errorf("handler at position %d: %w", i, ErrNilHandler)
		}
		if j, ok := seen[h]; ok {
			return nil, fmt.Errorf("handler %q at positions %d and %d: %w", h.Name(), j, i, ErrCycleDetected)
		}
		seen[h] = i
	}

	handlers := append([]Handler(nil), b.handlers...)
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	handlers[len(handlers)-1].SetNext(nil)

	if err := Validate(handlers[0]); err != nil {
		return nil, err
	}

	names := make([]string, len(handlers))
	for i, h := range handlers {
		names[i] = h.Name()
	}
	b.logger.Debug("ChainBuilder: chain built", "handlers", names)

	return &Chain{
		handlers: handlers,
		names:    names,
		logger:   b.logger,
	}, nil
}

// BuildSupportChain builds the Basic -> Advanced -> Expert escalation chain
func (b *ChainBuilder) BuildSupportChain(cfg *config.Support) (*Chain, error) {
	if cfg == nil {
		cfg = &config.Support{
			BasicKeyword:    DefaultBasicKeyword,
			AdvancedKeyword: DefaultAdvancedKeyword,
			ExpertKeyword:   DefaultExpertKeyword,
		}
	}

	basic := NewBasicSupport(cfg.BasicKeyword, b.logger)
	advanced := NewAdvancedSupport(cfg.AdvancedKeyword, b.logger)
	expert := NewExpertSupport(cfg.ExpertKeyword, b.logger)

	return NewChainBuilder(b.logger).Add(basic, advanced, expert).Build()
}

// Validate walks the chain starting at head and fails with ErrCycleDetected
// if any handler is reached twice. Handlers are compared by identity, so
// they must be comparable (pointer types are).
func Validate(head Handler) error {
	if head == nil {
		return ErrEmptyChain
	}

	visited := make(map[Handler]struct{})
	for h := head; h != nil; h = h.Next() {
		if _, ok := visited[h]; ok {
			return fmt.Errorf("handler %q reached twice: %w", h.Name(), ErrCycleDetected)
		}
		visited[h] = struct{}{}
	}
	return nil
}
