// Package styles provides colour styling for terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for result lines.
type Theme struct {
	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Success: lipgloss.Color("#A6E3A1"), // Green
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles renders text with the theme when enabled.
// A disabled Styles returns text unchanged.
type Styles struct {
	enabled bool
	success lipgloss.Style
	failure lipgloss.Style
}

// New creates styles from theme. If theme is nil, DefaultTheme is used.
func New(theme *Theme, enabled bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Styles{
		enabled: enabled,
		success: lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		failure: lipgloss.NewStyle().Foreground(theme.Error),
	}
}

// Plain returns styles that never add escape codes.
func Plain() *Styles {
	return New(nil, false)
}

// Enabled reports whether styling is applied.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Success renders a success line.
func (s *Styles) Success(text string) string {
	return s.render(s.success, text)
}

// Failure renders an error line.
func (s *Styles) Failure(text string) string {
	return s.render(s.failure, text)
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
