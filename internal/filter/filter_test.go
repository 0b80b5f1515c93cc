package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"emojigrip/internal/domain"
)

var entries = []domain.PaletteEntry{
	{Glyph: "🚀", Name: "rocket"},
	{Glyph: "🔥", Name: "fire"},
	{Glyph: "🥳", Name: "partying face"},
	{Glyph: "😀", Name: "grinning face"},
	{Glyph: "🌈", Name: "rainbow"},
}

func names(out []domain.PaletteEntry) []string {
	var ns []string
	for _, e := range out {
		ns = append(ns, e.Name)
	}
	return ns
}

func TestEmptyQueryReturnsAllInOrder(t *testing.T) {
	out := Rank(entries, "")
	require.Equal(t, names(entries), names(out))

	out = Rank(entries, "   ")
	require.Equal(t, names(entries), names(out))
}

func TestSubstringMatches(t *testing.T) {
	out := Rank(entries, "face")
	require.GreaterOrEqual(t, len(out), 2)
	require.Equal(t, []string{"partying face", "grinning face"}, names(out[:2]),
		"substring matches come first, in palette order")
}

func TestQueryIsCaseInsensitive(t *testing.T) {
	out := Rank(entries, "ROCKET")
	require.Equal(t, []string{"rocket"}, names(out))
}

func TestTypoStillMatches(t *testing.T) {
	out := Rank(entries, "roket")
	require.NotEmpty(t, out)
	require.Equal(t, "rocket", out[0].Name)
}

func TestSubstringRanksAheadOfFuzzy(t *testing.T) {
	withFier := append([]domain.PaletteEntry{}, entries...)
	withFier = append(withFier, domain.PaletteEntry{Glyph: "⚡", Name: "fierce"})

	out := Rank(withFier, "fier")
	require.GreaterOrEqual(t, len(out), 2)
	require.Equal(t, "fierce", out[0].Name, "substring match wins")
	require.Equal(t, "fire", out[1].Name, "edit distance 2 follows")
}

func TestUnrelatedQueryMatchesNothing(t *testing.T) {
	out := Rank(entries, "elephant")
	require.Empty(t, out)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	before := names(entries)
	_ = Rank(entries, "face")
	require.Equal(t, before, names(entries))
}
