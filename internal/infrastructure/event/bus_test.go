package event

import (
	"context"
	"errors"
	"testing"

	"github.com/procurement/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", 1),
	}
}

// captureHandler records the events it receives and can be told to fail
// or panic.
type captureHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *captureHandler) EventTypes() []string { return h.types }

func (h *captureHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func TestInMemoryEventBus_PublishDispatchesByType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	matching := &captureHandler{types: []string{"order.created"}}
	other := &captureHandler{types: []string{"order.cancelled"}}
	bus.Subscribe(matching)
	bus.Subscribe(other)

	err := bus.Publish(context.Background(), newTestEvent("order.created"))
	require.NoError(t, err)

	assert.Len(t, matching.received, 1)
	assert.Empty(t, other.received)
}

func TestInMemoryEventBus_SubscribeUsesHandlerEventTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &captureHandler{types: []string{"a", "b"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("a"), newTestEvent("b"), newTestEvent("c")))
	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_ExplicitTypesOverrideHandlerTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &captureHandler{types: []string{"a"}}
	bus.Subscribe(handler, "b")

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("a")))
	assert.Empty(t, handler.received)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("b")))
	assert.Len(t, handler.received, 1)
}

func TestInMemoryEventBus_FailingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := &captureHandler{types: []string{"x"}, err: errors.New("boom")}
	healthy := &captureHandler{types: []string{"x"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("x"))
	require.NoError(t, err, "publish absorbs handler failures")
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_PanickingHandlerIsRecovered(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	panicking := &captureHandler{types: []string{"x"}, panics: true}
	healthy := &captureHandler{types: []string{"x"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), newTestEvent("x"))
	})
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &captureHandler{types: []string{"x"}}
	bus.Subscribe(handler)
	require.NoError(t, bus.Publish(context.Background(), newTestEvent("x")))
	require.Len(t, handler.received, 1)

	bus.Unsubscribe(handler)
	require.NoError(t, bus.Publish(context.Background(), newTestEvent("x")))
	assert.Len(t, handler.received, 1, "no delivery after unsubscribe")
}

func TestInMemoryEventBus_SynchronousInOrderDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &captureHandler{types: []string{"x"}}
	bus.Subscribe(handler)

	first := newTestEvent("x")
	second := newTestEvent("x")
	require.NoError(t, bus.Publish(context.Background(), first, second))

	require.Len(t, handler.received, 2)
	assert.Equal(t, first.EventID(), handler.received[0].EventID())
	assert.Equal(t, second.EventID(), handler.received[1].EventID())
}
