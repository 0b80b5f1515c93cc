package selection

import (
	"emojigrip/internal/domain"
)

// State is one snapshot of the picker: the fixed palette, the current
// selection, the configured capacity and the last user-facing error.
// Reduce returns a wholly new snapshot for every intent; the UI only
// ever reads completed snapshots.
type State struct {
	Available   []domain.Item
	Selected    FocusedSequence
	MaxSelected int
	LastErr     string
}

// NewState creates the initial snapshot for a palette and capacity.
func NewState(available []domain.Item, maxSelected int) State {
	return State{
		Available:   available,
		Selected:    Empty(),
		MaxSelected: maxSelected,
	}
}

// IsSelected reports whether item is currently in the selection. The
// presentation layer uses this membership test to turn a checkbox
// toggle into a Select or Deselect intent, which is what keeps the
// selection duplicate-free.
func (s State) IsSelected(item domain.Item) bool {
	return s.Selected.Contains(item)
}
