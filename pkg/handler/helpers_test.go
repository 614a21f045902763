package handler

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockHandler is a testify double used as a successor so tests can assert
// whether, and with what, the chain delegated to it.
type MockHandler struct {
	mock.Mock
	name string
	next Handler
}

func newMockHandler(name string) *MockHandler {
	return &MockHandler{name: name}
}

func (m *MockHandler) Name() string { return m.name }

func (m *MockHandler) SetNext(handler Handler) Handler {
	m.next = handler
	return handler
}

func (m *MockHandler) Next() Handler { return m.next }

func (m *MockHandler) Handle(ctx context.Context, req Request) Outcome {
	args := m.Called(ctx, req)
	return args.Get(0).(Outcome)
}

// recorder collects the names of handlers whose action fired.
type recorder struct {
	fired []string
}

func (r *recorder) action(name string) Action {
	return func(context.Context, Request) {
		r.fired = append(r.fired, name)
	}
}

// keywordChain builds a chain of FuncHandlers h1..hN where hK consumes
// requests equal to "kK".
func keywordChain(n int, rec *recorder) (*Chain, []Handler, error) {
	handlers := make([]Handler, n)
	for i := range handlers {
		name := "h" + strconv.Itoa(i+1)
		handlers[i] = NewFuncHandler(name, Equals("k"+strconv.Itoa(i+1)), rec.action(name), newTestLogger())
	}
	chain, err := NewChainBuilder(newTestLogger()).Add(handlers...).Build()
	return chain, handlers, err
}
