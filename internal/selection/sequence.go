package selection

import (
	"emojigrip/internal/domain"
)

// noFocus marks the absent focus position.
const noFocus = -1

// FocusedSequence is an ordered run of items with at most one marked
// focus position. Operations return new values; a sequence is never
// mutated in place, so snapshots handed to the UI stay stable.
//
// Invariant: the focus index is either noFocus or a valid index into
// items. Reordering happens only through adjacent swaps (MoveFocusBy),
// which keeps the invariant trivially true: length never changes and
// only two elements are touched per call.
type FocusedSequence struct {
	items []domain.Item
	focus int
}

// Empty returns the zero-length sequence with no focus.
func Empty() FocusedSequence {
	return FocusedSequence{focus: noFocus}
}

// Append adds item at the end. The focus position is unaffected;
// appending to an unfocused sequence leaves it unfocused.
func (s FocusedSequence) Append(item domain.Item) FocusedSequence {
	items := make([]domain.Item, len(s.items)+1)
	copy(items, s.items)
	items[len(s.items)] = item
	return FocusedSequence{items: items, focus: s.focus}
}

// RemoveWhere keeps only the items for which keep returns false.
// If the removal shortens the sequence below the old focus position,
// the focus is clamped to the new last index; it is cleared when the
// sequence becomes empty.
func (s FocusedSequence) RemoveWhere(remove func(domain.Item) bool) FocusedSequence {
	items := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		if !remove(it) {
			items = append(items, it)
		}
	}

	focus := s.focus
	if len(items) == 0 {
		focus = noFocus
	} else if focus > len(items)-1 {
		focus = len(items) - 1
	}

	return FocusedSequence{items: items, focus: focus}
}

// FocusTo marks index as the focused position. Out-of-range indices
// report no change; callers must leave their state untouched then.
func (s FocusedSequence) FocusTo(index int) (FocusedSequence, bool) {
	if index < 0 || index >= len(s.items) {
		return s, false
	}
	return FocusedSequence{items: s.items, focus: index}, true
}

// MoveFocusBy swaps the focused item with its neighbor at focus+delta
// and moves the focus along with it. Out-of-range targets, and calls on
// an unfocused sequence, report no change.
func (s FocusedSequence) MoveFocusBy(delta int) (FocusedSequence, bool) {
	if s.focus == noFocus {
		return s, false
	}
	target := s.focus + delta
	if target < 0 || target >= len(s.items) {
		return s, false
	}

	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	items[s.focus], items[target] = items[target], items[s.focus]

	return FocusedSequence{items: items, focus: target}, true
}

// Items returns the items in order. The returned slice is a copy.
func (s FocusedSequence) Items() []domain.Item {
	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of items.
func (s FocusedSequence) Len() int {
	return len(s.items)
}

// FocusIndex returns the focused position, and whether one is set.
func (s FocusedSequence) FocusIndex() (int, bool) {
	if s.focus == noFocus {
		return 0, false
	}
	return s.focus, true
}

// Contains reports whether item is in the sequence.
func (s FocusedSequence) Contains(item domain.Item) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}
