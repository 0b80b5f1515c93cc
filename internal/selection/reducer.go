package selection

import (
	"emojigrip/internal/domain"
)

// Intent is a discrete user action fed into Reduce.
type Intent interface {
	Type() string
}

// SelectIntent asks for item to be added to the selection.
type SelectIntent struct {
	Item domain.Item
}

func (i SelectIntent) Type() string { return "select" }

// DeselectIntent asks for item to be removed from the selection.
type DeselectIntent struct {
	Item domain.Item
}

func (i DeselectIntent) Type() string { return "deselect" }

// FocusTargetIntent asks for the focus to move to a selection index.
type FocusTargetIntent struct {
	Index int
}

func (i FocusTargetIntent) Type() string { return "focus_target" }

// FocusPrevIntent swaps the focused item one position left.
type FocusPrevIntent struct{}

func (i FocusPrevIntent) Type() string { return "focus_prev" }

// FocusNextIntent swaps the focused item one position right.
type FocusNextIntent struct{}

func (i FocusNextIntent) Type() string { return "focus_next" }

// ClearAllIntent drops the whole selection.
type ClearAllIntent struct{}

func (i ClearAllIntent) Type() string { return "clear_all" }

// Reduce maps an intent and the current snapshot to the next snapshot.
// It is pure and total: every intent yields a defined result, and
// out-of-range focus moves leave the state untouched rather than
// erroring (they only arise from stale UI indices).
func Reduce(s State, intent Intent) State {
	switch intent := intent.(type) {
	case SelectIntent:
		return TrySelect(s, intent.Item)

	case DeselectIntent:
		return Deselect(s, intent.Item)

	case FocusTargetIntent:
		if seq, ok := s.Selected.FocusTo(intent.Index); ok {
			s.Selected = seq
		}
		return s

	case FocusPrevIntent:
		if seq, ok := s.Selected.MoveFocusBy(-1); ok {
			s.Selected = seq
		}
		return s

	case FocusNextIntent:
		if seq, ok := s.Selected.MoveFocusBy(+1); ok {
			s.Selected = seq
		}
		return s

	case ClearAllIntent:
		// LastErr is intentionally kept; clearing the selection is not
		// an acknowledgement of a previous capacity error.
		s.Selected = Empty()
		return s
	}

	return s
}
