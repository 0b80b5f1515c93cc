package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/require"

	"emojigrip/internal/domain"
)

var testPalette = []domain.PaletteEntry{
	{Glyph: "😀", Name: "grinning face"},
	{Glyph: "😎", Name: "sunglasses"},
	{Glyph: "🤖", Name: "robot"},
}

func testViewState() ViewState {
	return ViewState{
		Width:       80,
		Height:      24,
		Palette:     testPalette,
		Selected:    []domain.Item{"😎", "🤖"},
		FocusIndex:  1,
		HasFocus:    true,
		MaxSelected: 5,
		Cursor:      0,
		HelpModel:   help.New(),
	}
}

func TestRenderShowsCheckedAndUncheckedBoxes(t *testing.T) {
	out := NewRenderer().Render(testViewState())

	require.Contains(t, out, "[x]")
	require.Contains(t, out, "[ ]")
	require.Contains(t, out, "grinning face")
}

func TestRenderMarksCursorRow(t *testing.T) {
	out := NewRenderer().Render(testViewState())
	require.Contains(t, out, "❯")
}

func TestRenderShowsPickCountAndFocus(t *testing.T) {
	out := NewRenderer().Render(testViewState())

	require.Contains(t, out, "picks (2/5):")
	require.Contains(t, out, "[🤖]", "focused pick is bracketed")
}

func TestRenderShowsErrorLine(t *testing.T) {
	state := testViewState()
	state.LastErr = "you can pick at most 5 emoji"

	out := NewRenderer().Render(state)
	require.Contains(t, out, state.LastErr)
}

func TestRenderEmptyFilteredPalette(t *testing.T) {
	state := testViewState()
	state.Palette = nil
	state.FilterQuery = "zzz"

	out := NewRenderer().Render(state)
	require.Contains(t, out, "no emoji match")
	require.Contains(t, out, "filter: zzz")
}

func TestRenderEmptySelection(t *testing.T) {
	state := testViewState()
	state.Selected = nil
	state.HasFocus = false

	out := NewRenderer().Render(state)
	require.Contains(t, out, "picks (0/5):")
	require.Contains(t, out, "none")
}

func TestPadGlyphAlignsColumns(t *testing.T) {
	wide := padGlyph("😀")
	require.True(t, strings.HasSuffix(wide, " "))

	narrow := padGlyph("✨")
	require.True(t, strings.HasSuffix(narrow, " "))
}
