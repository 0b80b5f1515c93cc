package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"emojigrip/internal/domain"
	"emojigrip/internal/eventbus"
)

func TestCopyRequestWritesJoinedGlyphs(t *testing.T) {
	bus := eventbus.NewSync()
	svc := NewService(bus)

	var written string
	svc.writeFn = func(s string) error {
		written = s
		return nil
	}

	var completed *eventbus.CopyCompletedEvent
	bus.Subscribe(eventbus.EventCopyCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CopyCompletedEvent); ok {
			completed = &event
		}
	})

	bus.Publish(eventbus.CopyRequestedEvent{
		Items: []domain.Item{"😀", "😎", "🤖"},
	})

	require.Equal(t, "😀😎🤖", written)
	require.NotNil(t, completed)
	require.Equal(t, 3, completed.Count)
	require.NoError(t, completed.Err)
}

func TestCopyFailureIsReported(t *testing.T) {
	bus := eventbus.NewSync()
	svc := NewService(bus)

	writeErr := errors.New("no clipboard available")
	svc.writeFn = func(string) error { return writeErr }

	var completed *eventbus.CopyCompletedEvent
	bus.Subscribe(eventbus.EventCopyCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CopyCompletedEvent); ok {
			completed = &event
		}
	})

	bus.Publish(eventbus.CopyRequestedEvent{Items: []domain.Item{"😀"}})

	require.NotNil(t, completed)
	require.ErrorIs(t, completed.Err, writeErr)
	require.Equal(t, 1, completed.Count)
}
