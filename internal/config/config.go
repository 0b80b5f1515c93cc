package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"emojigrip/internal/domain"
	"emojigrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	MaxSelected int            `toml:"max_selected"`
	Palette     []PaletteEntry `toml:"palette"`
	UISettings  UISettings     `toml:"ui"`
}

// PaletteEntry is one selectable glyph in the configured palette
type PaletteEntry struct {
	Glyph string `toml:"glyph"`
	Name  string `toml:"name"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpOnStart bool `toml:"show_help_on_start"`
}

// PaletteEntries converts the configured palette to domain values
func (c *Config) PaletteEntries() []domain.PaletteEntry {
	entries := make([]domain.PaletteEntry, len(c.Palette))
	for i, p := range c.Palette {
		entries[i] = domain.PaletteEntry{Glyph: domain.Item(p.Glyph), Name: p.Name}
	}
	return entries
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	emojigripDir := filepath.Join(configDir, "emojigrip")
	os.MkdirAll(emojigripDir, 0755)

	return &configService{
		filePath: filepath.Join(emojigripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path, falling back to
// the built-in defaults when no file exists yet.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// An empty palette or capacity would make the picker useless;
	// fill the gaps from the defaults.
	def := DefaultConfig()
	if cfg.MaxSelected <= 0 {
		cfg.MaxSelected = def.MaxSelected
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			MaxSelected: cfg.MaxSelected,
			Palette:     cfg.PaletteEntries(),
		})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		MaxSelected: 5,
		Palette: []PaletteEntry{
			{Glyph: "😀", Name: "grinning face"},
			{Glyph: "😂", Name: "tears of joy"},
			{Glyph: "😍", Name: "heart eyes"},
			{Glyph: "😎", Name: "sunglasses"},
			{Glyph: "🤔", Name: "thinking face"},
			{Glyph: "😴", Name: "sleeping face"},
			{Glyph: "🥳", Name: "partying face"},
			{Glyph: "😭", Name: "loudly crying"},
			{Glyph: "🤖", Name: "robot"},
			{Glyph: "👻", Name: "ghost"},
			{Glyph: "🐙", Name: "octopus"},
			{Glyph: "🦀", Name: "crab"},
			{Glyph: "🌈", Name: "rainbow"},
			{Glyph: "🔥", Name: "fire"},
			{Glyph: "✨", Name: "sparkles"},
			{Glyph: "🍕", Name: "pizza"},
			{Glyph: "☕", Name: "coffee"},
			{Glyph: "🚀", Name: "rocket"},
			{Glyph: "🎉", Name: "party popper"},
			{Glyph: "❤️", Name: "red heart"},
		},
		UISettings: UISettings{
			ShowHelpOnStart: false,
		},
	}
}
