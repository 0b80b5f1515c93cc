package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emojigrip/internal/domain"
)

func TestSyncBusDeliversInline(t *testing.T) {
	bus := NewSync()

	var got []DomainEvent
	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		got = append(got, e)
	})

	bus.Publish(SelectionClearedEvent{})
	bus.Publish(SelectionClearedEvent{})

	require.Len(t, got, 2, "sync bus delivers before Publish returns")
}

func TestSyncBusOnlyDeliversMatchingType(t *testing.T) {
	bus := NewSync()

	var cleared, changed int
	bus.Subscribe(EventSelectionCleared, func(DomainEvent) { cleared++ })
	bus.Subscribe(EventSelectionChanged, func(DomainEvent) { changed++ })

	bus.Publish(SelectionChangedEvent{Added: []domain.Item{"😀"}, Total: 1})

	require.Equal(t, 0, cleared)
	require.Equal(t, 1, changed)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewSync()

	var calls int
	unsubscribe := bus.Subscribe(EventCopyCompleted, func(DomainEvent) { calls++ })

	bus.Publish(CopyCompletedEvent{Count: 1})
	unsubscribe()
	bus.Publish(CopyCompletedEvent{Count: 1})

	require.Equal(t, 1, calls)
}

func TestHandlerPanicDoesNotStopOthers(t *testing.T) {
	bus := NewSync()

	var called bool
	bus.Subscribe(EventSelectionCleared, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventSelectionCleared, func(DomainEvent) { called = true })

	bus.Publish(SelectionClearedEvent{})

	require.True(t, called, "a panicking handler must not break the others")
}

func TestAsyncBusDelivers(t *testing.T) {
	bus := New()

	done := make(chan DomainEvent, 1)
	bus.Subscribe(EventCopyRequested, func(e DomainEvent) {
		done <- e
	})

	bus.Publish(CopyRequestedEvent{Items: []domain.Item{"😀"}})

	select {
	case e := <-done:
		require.Equal(t, EventCopyRequested, e.Type())
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}
