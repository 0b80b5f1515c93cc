package domain

// Item is a single selectable glyph. Items are plain values and
// compare by string equality.
type Item string

// PaletteEntry pairs a glyph with the human-readable name used when
// filtering the palette.
type PaletteEntry struct {
	Glyph Item
	Name  string
}

// Glyphs projects a palette down to its glyphs, in order.
func Glyphs(entries []PaletteEntry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = e.Glyph
	}
	return items
}
