package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBaseHandler_SetNext(t *testing.T) {
	base := NewBaseHandler("base")
	next := NewBaseHandler("next")
	returned := base.SetNext(next)
	assert.Same(t, next, returned)
	assert.Equal(t, next, base.Next())
}

func TestBaseHandler_SetNext_Fluent(t *testing.T) {
	a, b, c := NewBaseHandler("a"), NewBaseHandler("b"), NewBaseHandler("c")
	a.SetNext(b).SetNext(c)
	assert.Equal(t, b, a.Next())
	assert.Equal(t, c, b.Next())
	assert.Nil(t, c.Next())
}

func TestBaseHandler_SetNext_LastWriteWins(t *testing.T) {
	h := NewBaseHandler("h")
	x := newMockHandler("x")
	y := newMockHandler("y")
	y.On("Handle", mock.Anything, Request("req")).Return(Outcome{Status: StatusResolved, HandledBy: "y", Visited: []string{"y"}})

	h.SetNext(x)
	h.SetNext(y)
	require.Equal(t, y, h.Next())

	out := h.Handle(context.Background(), "req")
	assert.Equal(t, "y", out.HandledBy)
	assert.Equal(t, []string{"h", "y"}, out.Visited)
	x.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	y.AssertExpectations(t)
}

func TestBaseHandler_Handle_WithNoNext(t *testing.T) {
	base := NewBaseHandler("base")
	out := base.Handle(context.Background(), "anything")
	assert.Equal(t, StatusUnhandled, out.Status)
	assert.False(t, out.Resolved())
	assert.Empty(t, out.HandledBy)
	assert.Equal(t, []string{"base"}, out.Visited)
	assert.NotEqual(t, uuid.Nil, out.DispatchID)
}

func TestBaseHandler_Handle_WithNext(t *testing.T) {
	base := NewBaseHandler("base")
	next := newMockHandler("next")
	req := Request("req")
	next.On("Handle", mock.Anything, req).Return(Outcome{Status: StatusResolved, HandledBy: "next", Visited: []string{"next"}})
	base.SetNext(next)

	out := base.Handle(context.Background(), req)
	assert.True(t, out.Resolved())
	assert.Equal(t, "next", out.HandledBy)
	assert.Equal(t, []string{"base", "next"}, out.Visited)
	next.AssertExpectations(t)
}

func TestForward_NilNext(t *testing.T) {
	id := uuid.New()
	ctx := WithDispatchID(context.Background(), id)
	out := Forward(ctx, nil, "req", "tail")
	assert.Equal(t, StatusUnhandled, out.Status)
	assert.Equal(t, []string{"tail"}, out.Visited)
	assert.Equal(t, id, out.DispatchID)
}

func TestForward_PassesRequestAndDispatchIDUnchanged(t *testing.T) {
	id := uuid.New()
	ctx := WithDispatchID(context.Background(), id)
	next := newMockHandler("next")
	next.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
		got, ok := DispatchID(ctx)
		return ok && got == id
	}), Request("same")).Return(Outcome{Status: StatusUnhandled, Visited: []string{"next"}, DispatchID: id})

	out := Forward(ctx, next, "same", "prev")
	assert.Equal(t, []string{"prev", "next"}, out.Visited)
	assert.Equal(t, id, out.DispatchID)
	next.AssertExpectations(t)
}

func TestDispatchID(t *testing.T) {
	_, ok := DispatchID(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := DispatchID(WithDispatchID(context.Background(), id))
	require.True(t, ok)
	assert.Equal(t, id, got)
}
