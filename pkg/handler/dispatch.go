package handler

import (
	"context"

	"github.com/google/uuid"
)

type dispatchKey struct{}

// WithDispatchID returns a context carrying id as the dispatch correlation ID.
func WithDispatchID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, dispatchKey{}, id)
}

// DispatchID returns the dispatch correlation ID stored in ctx, if any.
func DispatchID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(dispatchKey{}).(uuid.UUID)
	return id, ok
}

// ensureDispatch returns ctx unchanged when it already carries an ID,
// otherwise a child context with a fresh one.
func ensureDispatch(ctx context.Context) (context.Context, uuid.UUID) {
	if id, ok := DispatchID(ctx); ok {
		return ctx, id
	}
	id := uuid.New()
	return WithDispatchID(ctx, id), id
}
