package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"emojigrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventSelectionCleared = domain.EventSelectionCleared
	EventCapacityExceeded = domain.EventCapacityExceeded
	EventFocusMoved       = domain.EventFocusMoved
	EventCopyRequested    = domain.EventCopyRequested
	EventCopyCompleted    = domain.EventCopyCompleted
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type CapacityExceededEvent = domain.CapacityExceededEvent
type FocusMovedEvent = domain.FocusMovedEvent
type CopyRequestedEvent = domain.CopyRequestedEvent
type CopyCompletedEvent = domain.CopyCompletedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu          sync.RWMutex
	handlers    map[EventType][]EventHandler
	eventChan   chan DomainEvent
	synchronous bool
}

// New creates an event bus that dispatches on a background goroutine.
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]EventHandler),
		eventChan: make(chan DomainEvent, 100),
	}

	go b.dispatch()

	return b
}

// NewSync creates an event bus that calls handlers inline from Publish.
// Delivery order matches publish order, which services that react to
// one another's events (and tests) rely on.
func NewSync() EventBus {
	return &bus{
		handlers:    make(map[EventType][]EventHandler),
		synchronous: true,
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	if b.synchronous {
		b.deliver(event)
		return
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	idx := len(b.handlers[eventType]) - 1

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		if idx < len(handlers) {
			b.handlers[eventType] = append(handlers[:idx], handlers[idx+1:]...)
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	for event := range b.eventChan {
		b.deliver(event)
	}
}

// deliver calls every handler registered for the event's type
func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	handlersCopy := make([]EventHandler, len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			handler(event)
		}()
	}
}
