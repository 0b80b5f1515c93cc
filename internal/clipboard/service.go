package clipboard

import (
	"log"
	"strings"

	"github.com/atotto/clipboard"

	"emojigrip/internal/eventbus"
)

// Service copies the current selection to the system clipboard. It
// subscribes to copy requests on the bus and reports back with a
// CopyCompleted event, so the UI never blocks on clipboard I/O.
type Service struct {
	bus     eventbus.EventBus
	writeFn func(string) error
}

// NewService creates a clipboard service and subscribes it to the bus
func NewService(bus eventbus.EventBus) *Service {
	s := &Service{
		bus:     bus,
		writeFn: clipboard.WriteAll,
	}

	bus.Subscribe(eventbus.EventCopyRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CopyRequestedEvent); ok {
			s.handleCopyRequested(event)
		}
	})

	return s
}

func (s *Service) handleCopyRequested(event eventbus.CopyRequestedEvent) {
	var sb strings.Builder
	for _, item := range event.Items {
		sb.WriteString(string(item))
	}

	err := s.writeFn(sb.String())
	if err != nil {
		log.Printf("Clipboard copy failed: %v", err)
	}

	s.bus.Publish(eventbus.CopyCompletedEvent{
		Count: len(event.Items),
		Err:   err,
	})
}
