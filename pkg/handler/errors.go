package handler

import "errors"

var (
	// ErrCycleDetected is returned when a handler appears twice in a chain.
	ErrCycleDetected = errors.New("handler chain contains a cycle")

	// ErrNilHandler is returned when a nil handler is added to a chain.
	ErrNilHandler = errors.New("nil handler")

	// ErrEmptyChain is returned when a chain has no handlers.
	ErrEmptyChain = errors.New("handler chain is empty")

	// ErrChainModified is returned when a built chain's links were changed.
	ErrChainModified = errors.New("handler chain was relinked after build")
)
