package handler

import (
	"context"
	"fmt"
	"log/slog"
)

// Chain is a frozen, validated sequence of handlers produced by ChainBuilder.
// It has no mutators, so concurrent dispatches through the same Chain are safe.
// If the underlying handlers are relinked after Build (for example by another
// builder reusing them), Handle refuses to dispatch and reports ErrChainModified.
type Chain struct {
	handlers []Handler
	names    []string
	logger   *slog.Logger
}

// Handle submits req to the head of the chain and returns the outcome
func (c *Chain) Handle(ctx context.Context, req Request) Outcome {
	ctx, id := ensureDispatch(ctx)
	logger := c.logger.With("request", req, "dispatchID", id)

	if err := c.Verify(); err != nil {
		logger.Error("Chain: refusing to dispatch", "error", err)
		return Outcome{Status: StatusUnhandled, DispatchID: id, Err: err}
	}
	logger.Debug("Chain: dispatching", "handlers", c.names)

	out := c.handlers[0].Handle(ctx, req)
	if out.Resolved() {
		logger.Info("Chain: request resolved", "handledBy", out.HandledBy, "visited", out.Visited)
	} else {
		logger.Warn("Chain: request unhandled", "visited", out.Visited)
	}
	return out
}

// Verify checks that every handler still links to the successor it was given
// at Build time and that the tail has none.
func (c *Chain) Verify() error {
	for i, h := range c.handlers {
		var want Handler
		if i+1 < len(c.handlers) {
			want = c.handlers[i+1]
		}
		if h.Next() != want {
			return fmt.Errorf("handler %q relinked after build: %w", h.Name(), ErrChainModified)
		}
	}
	return nil
}

// Len returns the number of handlers in the chain
func (c *Chain) Len() int {
	return len(c.names)
}

// Names returns the handler names in chain order
func (c *Chain) Names() []string {
	return append([]string(nil), c.names...)
}
