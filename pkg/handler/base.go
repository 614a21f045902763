package handler

import (
	"context"
)

// BaseHandler provides common functionality for all handlers.
// Embed it to get Name, SetNext and Next; its Handle only forwards.
type BaseHandler struct {
	name string
	next Handler
}

// NewBaseHandler creates a pass-through handler with the given name
func NewBaseHandler(name string) *BaseHandler {
	return &BaseHandler{name: name}
}

// Name returns the handler name
func (h *BaseHandler) Name() string {
	return h.name
}

// SetNext sets the next handler in the chain
func (h *BaseHandler) SetNext(handler Handler) Handler {
	h.next = handler
	return handler
}

// Next returns the next handler in the chain
func (h *BaseHandler) Next() Handler {
	return h.next
}

// Handle passes the request to the next handler in the chain
func (h *BaseHandler) Handle(ctx context.Context, req Request) Outcome {
	ctx, _ = ensureDispatch(ctx)
	return Forward(ctx, h.next, req, h.name)
}

// Forward delegates req to next on behalf of the handler named from.
// A nil next ends the traversal with StatusUnhandled. The returned outcome
// has from prepended to its visit trace.
func Forward(ctx context.Context, next Handler, req Request, from string) Outcome {
	ctx, id := ensureDispatch(ctx)
	if next == nil {
		return Outcome{
			Status:     StatusUnhandled,
			Visited:    []string{from},
			DispatchID: id,
		}
	}

	out := next.Handle(ctx, req)
	out.Visited = append([]string{from}, out.Visited...)
	return out
}
