package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Checkbox    lipgloss.Style
	Checked     lipgloss.Style
	Dim         lipgloss.Style
	Focused     lipgloss.Style
	Strip       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Checkbox: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Strip: lipgloss.NewStyle().
			MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
