package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"emojigrip/internal/domain"
)

// glyphCell is the column width glyphs are padded to. Most emoji render
// two cells wide; padding keeps the name column aligned either way.
const glyphCell = 3

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Palette     []domain.PaletteEntry
	Selected    []domain.Item
	FocusIndex  int
	HasFocus    bool
	MaxSelected int
	Cursor      int
	LastErr     string
	Status      string
	Filtering   bool
	FilterQuery string
	HelpModel   help.Model
	KeyMap      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("emojigrip"))
	content.WriteString("\n")

	if state.Filtering || state.FilterQuery != "" {
		content.WriteString(r.styles.Filter.Render("filter: "+state.FilterQuery) + "\n")
	}

	content.WriteString(r.renderPalette(state))
	content.WriteString(r.renderSelection(state))
	content.WriteString(r.renderStatus(state))

	if state.KeyMap != nil {
		content.WriteString("\n" + r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return r.styles.Main.Render(content.String())
}

// renderPalette draws the checkbox list the user picks from
func (r *Renderer) renderPalette(state ViewState) string {
	if len(state.Palette) == 0 {
		return r.styles.Dim.Render("no emoji match") + "\n"
	}

	selected := make(map[domain.Item]bool, len(state.Selected))
	for _, it := range state.Selected {
		selected[it] = true
	}

	lines := &strings.Builder{}
	for i, entry := range state.Palette {
		cursor := "  "
		if i == state.Cursor {
			cursor = r.styles.Cursor.Render("❯ ")
		}

		box := r.styles.Checkbox.Render("[ ]")
		if selected[entry.Glyph] {
			box = r.styles.Checked.Render("[x]")
		}

		lines.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor, box, padGlyph(entry.Glyph), r.styles.Dim.Render(entry.Name)))
	}
	return lines.String()
}

// renderSelection draws the ordered picks with the focused one marked
func (r *Renderer) renderSelection(state ViewState) string {
	label := fmt.Sprintf("picks (%d/%d):", len(state.Selected), state.MaxSelected)
	if len(state.Selected) == 0 {
		return r.styles.Strip.Render(label+" "+r.styles.Dim.Render("none")) + "\n"
	}

	parts := make([]string, len(state.Selected))
	for i, item := range state.Selected {
		if state.HasFocus && i == state.FocusIndex {
			parts[i] = r.styles.Focused.Render("[" + string(item) + "]")
		} else {
			parts[i] = " " + string(item) + " "
		}
	}
	return r.styles.Strip.Render(label+" "+strings.Join(parts, "")) + "\n"
}

// renderStatus draws the last capacity error or transient status line
func (r *Renderer) renderStatus(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	switch {
	case state.LastErr != "":
		return r.styles.StatusError.Render(wordwrap.String(state.LastErr, width)) + "\n"
	case state.Status != "":
		return r.styles.Status.Render(wordwrap.String(state.Status, width)) + "\n"
	default:
		return ""
	}
}

// padGlyph pads a glyph to a fixed display width
func padGlyph(item domain.Item) string {
	g := string(item)
	pad := glyphCell - runewidth.StringWidth(g)
	if pad < 1 {
		pad = 1
	}
	return g + strings.Repeat(" ", pad)
}
