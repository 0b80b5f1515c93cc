package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventCapacityExceeded EventType = "CapacityExceeded"
	EventFocusMoved       EventType = "FocusMoved"
	EventCopyRequested    EventType = "CopyRequested"
	EventCopyCompleted    EventType = "CopyCompleted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when items are added to or removed
// from the selection
type SelectionChangedEvent struct {
	Added   []Item
	Removed []Item
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// CapacityExceededEvent is emitted when a select is refused because the
// selection is already at capacity
type CapacityExceededEvent struct {
	Max int
}

func (e CapacityExceededEvent) Type() EventType { return EventCapacityExceeded }

// FocusMovedEvent is emitted when the focused position in the selection
// changes, whether by retargeting or by an adjacent swap
type FocusMovedEvent struct {
	From int // -1 when focus was absent
	To   int
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// CopyRequestedEvent asks the clipboard service to copy the given items
type CopyRequestedEvent struct {
	Items []Item
}

func (e CopyRequestedEvent) Type() EventType { return EventCopyRequested }

// CopyCompletedEvent reports the outcome of a clipboard copy
type CopyCompletedEvent struct {
	Count int
	Err   error
}

func (e CopyCompletedEvent) Type() EventType { return EventCopyCompleted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	MaxSelected int
	Palette     []PaletteEntry
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
