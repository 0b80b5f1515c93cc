package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emojigrip/internal/config"
	"emojigrip/internal/domain"
	"emojigrip/internal/eventbus"
	"emojigrip/internal/filter"
	"emojigrip/internal/selection"
	"emojigrip/internal/ui/views"
)

// Model represents the UI state. It owns the single live selection
// snapshot: every accepted key produces one intent, the intent is
// reduced to a new snapshot, and the view renders from that snapshot.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	st      selection.State       // current snapshot
	palette []domain.PaletteEntry // full configured palette
	visible []domain.PaletteEntry // palette after filtering

	cursor      int // cursor within visible
	filtering   bool
	filterInput textinput.Model

	keys   KeyMap
	help   help.Model
	status string // transient message, e.g. copy results

	width  int
	height int

	renderer *views.Renderer
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	palette := cfg.PaletteEntries()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter"
	ti.CharLimit = 40

	h := help.New()
	h.ShowAll = cfg.UISettings.ShowHelpOnStart

	return &Model{
		bus:         bus,
		config:      cfg,
		st:          selection.NewState(domain.Glyphs(palette), cfg.MaxSelected),
		palette:     palette,
		visible:     palette,
		filterInput: ti,
		keys:        DefaultKeyMap(),
		help:        h,
		renderer:    views.NewRenderer(),
	}
}

// State returns the current selection snapshot
func (m *Model) State() selection.State {
	return m.st
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case eventbus.CopyCompletedEvent:
		if event.Err != nil {
			m.status = fmt.Sprintf("copy failed: %v", event.Err)
		} else {
			m.status = fmt.Sprintf("copied %d emoji to clipboard", event.Count)
		}
	}
	return m, nil
}

// handleKey translates a key press into an intent or a UI-local action
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleAtCursor()

	case key.Matches(msg, m.keys.FocusNextTarget):
		m.focusNextTarget()

	case key.Matches(msg, m.keys.MoveLeft):
		m.apply(selection.FocusPrevIntent{})

	case key.Matches(msg, m.keys.MoveRight):
		m.apply(selection.FocusNextIntent{})

	case key.Matches(msg, m.keys.ClearAll):
		m.apply(selection.ClearAllIntent{})

	case key.Matches(msg, m.keys.Copy):
		m.requestCopy()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateFiltering handles keys while the filter input is active
func (m *Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil

	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible palette and keeps the cursor valid
func (m *Model) applyFilter() {
	m.visible = filter.Rank(m.palette, m.filterInput.Value())
	if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// toggleAtCursor selects or deselects the entry under the cursor. The
// membership test decides which intent to emit, so an already-selected
// glyph can never be selected twice.
func (m *Model) toggleAtCursor() {
	if m.cursor >= len(m.visible) {
		return
	}
	item := m.visible[m.cursor].Glyph
	if m.st.IsSelected(item) {
		m.apply(selection.DeselectIntent{Item: item})
	} else {
		m.apply(selection.SelectIntent{Item: item})
	}
}

// focusNextTarget cycles the focus through the selection
func (m *Model) focusNextTarget() {
	if m.st.Selected.Len() == 0 {
		return
	}
	next := 0
	if idx, ok := m.st.Selected.FocusIndex(); ok {
		next = (idx + 1) % m.st.Selected.Len()
	}
	m.apply(selection.FocusTargetIntent{Index: next})
}

// requestCopy hands the current picks to the clipboard service
func (m *Model) requestCopy() {
	if m.st.Selected.Len() == 0 {
		m.status = "nothing to copy"
		return
	}
	m.bus.Publish(eventbus.CopyRequestedEvent{Items: m.st.Selected.Items()})
}

// apply reduces one intent and publishes the resulting domain events
func (m *Model) apply(intent selection.Intent) {
	before := m.st
	m.st = selection.Reduce(m.st, intent)
	m.publishChanges(before, intent)
}

// publishChanges compares snapshots and tells the bus what happened
func (m *Model) publishChanges(before selection.State, intent selection.Intent) {
	switch intent := intent.(type) {
	case selection.SelectIntent:
		if m.st.Selected.Len() > before.Selected.Len() {
			m.bus.Publish(eventbus.SelectionChangedEvent{
				Added: []domain.Item{intent.Item},
				Total: m.st.Selected.Len(),
			})
		} else if m.st.LastErr != "" {
			m.bus.Publish(eventbus.CapacityExceededEvent{Max: m.st.MaxSelected})
		}

	case selection.DeselectIntent:
		if m.st.Selected.Len() < before.Selected.Len() {
			m.bus.Publish(eventbus.SelectionChangedEvent{
				Removed: []domain.Item{intent.Item},
				Total:   m.st.Selected.Len(),
			})
		}

	case selection.FocusTargetIntent, selection.FocusPrevIntent, selection.FocusNextIntent:
		from, hadFocus := before.Selected.FocusIndex()
		to, hasFocus := m.st.Selected.FocusIndex()
		if !hadFocus {
			from = -1
		}
		if hasFocus && from != to {
			m.bus.Publish(eventbus.FocusMovedEvent{From: from, To: to})
		}

	case selection.ClearAllIntent:
		if before.Selected.Len() > 0 {
			m.bus.Publish(eventbus.SelectionClearedEvent{})
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	focusIndex, hasFocus := m.st.Selected.FocusIndex()

	return m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Palette:     m.visible,
		Selected:    m.st.Selected.Items(),
		FocusIndex:  focusIndex,
		HasFocus:    hasFocus,
		MaxSelected: m.st.MaxSelected,
		Cursor:      m.cursor,
		LastErr:     m.st.LastErr,
		Status:      m.status,
		Filtering:   m.filtering,
		FilterQuery: m.filterInput.Value(),
		HelpModel:   m.help,
		KeyMap:      m.keys,
	})
}
