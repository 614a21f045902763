package handler

import (
	"context"

	"github.com/google/uuid"
)

// Request is the unit of work routed through a chain. Handlers interpret it
// through their own Matcher; the chain never inspects it.
type Request string

// Status represents the result of a dispatch
type Status string

// Status constants describe how a dispatch ended.
const (
	StatusResolved  Status = "resolved"
	StatusUnhandled Status = "unhandled"
)

// Handler defines the interface for a node in the chain
type Handler interface {
	// Name identifies the handler in outcomes and logs.
	Name() string
	// SetNext stores handler as the successor, replacing any previous one,
	// and returns handler so links can be written a.SetNext(b).SetNext(c).
	SetNext(handler Handler) Handler
	// Next returns the current successor, or nil at the tail.
	Next() Handler
	// Handle either consumes req or forwards it to the successor.
	Handle(ctx context.Context, req Request) Outcome
}

// Matcher decides whether a handler consumes a request
type Matcher func(Request) bool

// Equals returns a Matcher that accepts only the given keyword.
func Equals(keyword string) Matcher {
	return func(req Request) bool {
		return string(req) == keyword
	}
}

// Outcome contains the result of a dispatch.
// Visited lists every handler that was invoked, in chain order, including
// the one that resolved the request. Err is set only when the chain could not
// dispatch at all; an unhandled request is not an error.
type Outcome struct {
	Status     Status
	HandledBy  string
	Visited    []string
	DispatchID uuid.UUID
	Err        error
}

// Resolved reports whether some handler consumed the request.
func (o Outcome) Resolved() bool {
	return o.Status == StatusResolved
}

func resolved(ctx context.Context, name string) Outcome {
	id, _ := DispatchID(ctx)
	return Outcome{
		Status:     StatusResolved,
		HandledBy:  name,
		Visited:    []string{name},
		DispatchID: id,
	}
}
