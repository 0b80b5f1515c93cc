package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, 5, cfg.MaxSelected)
	require.NotEmpty(t, cfg.Palette)
	for _, entry := range cfg.Palette {
		require.NotEmpty(t, entry.Glyph)
		require.NotEmpty(t, entry.Name)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{
		Version:     1,
		MaxSelected: 3,
		Palette: []PaletteEntry{
			{Glyph: "🦀", Name: "crab"},
			{Glyph: "🐙", Name: "octopus"},
		},
	}
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg.MaxSelected, loaded.MaxSelected)
	require.Equal(t, cfg.Palette, loaded.Palette)
}

func TestLoadFillsMissingFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cs := NewConfigService()
	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	def := DefaultConfig()
	require.Equal(t, def.MaxSelected, loaded.MaxSelected)
	require.Equal(t, def.Palette, loaded.Palette)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_selected = [not toml"), 0644))

	cs := NewConfigService()
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}

func TestPaletteEntriesConversion(t *testing.T) {
	cfg := &Config{
		Palette: []PaletteEntry{
			{Glyph: "🔥", Name: "fire"},
		},
	}

	entries := cfg.PaletteEntries()
	require.Len(t, entries, 1)
	require.Equal(t, "fire", entries[0].Name)
	require.EqualValues(t, "🔥", entries[0].Glyph)
}
