package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Loading     lipgloss.Style
	MovieTitle  lipgloss.Style
	Year        lipgloss.Style
	Score       lipgloss.Style
	Pagination  lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Width(12),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).MarginTop(1),
		MovieTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Year:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pagination:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginTop(1),
		Help:        lipgloss.NewStyle().MarginTop(1),
	}
}
