package selection

import (
	"fmt"

	"emojigrip/internal/domain"
)

// CapacityMessage is the user-facing error shown when a select is
// refused because the selection is already at capacity.
func CapacityMessage(max int) string {
	return fmt.Sprintf("you can pick at most %d emoji", max)
}

// TrySelect appends item to the selection. At capacity it refuses,
// leaving the selection unchanged and recording the capacity error;
// on success any previous error is cleared.
func TrySelect(s State, item domain.Item) State {
	if s.Selected.Len() >= s.MaxSelected {
		s.LastErr = CapacityMessage(s.MaxSelected)
		return s
	}
	s.Selected = s.Selected.Append(item)
	s.LastErr = ""
	return s
}

// Deselect removes every occurrence of item from the selection.
// Deselecting never fails and deliberately does not clear LastErr.
func Deselect(s State, item domain.Item) State {
	s.Selected = s.Selected.RemoveWhere(func(it domain.Item) bool {
		return it == item
	})
	return s
}
