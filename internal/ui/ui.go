// Package ui holds the lipgloss styles shared by all commands. Styles are
// package-level constants-in-spirit: initialized once and never mutated.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))
)

// Title renders bold section headings.
func Title(s string) string { return titleStyle.Render(s) }

// Success renders s in green.
func Success(s string) string { return successStyle.Render(s) }

// Error renders s in red.
func Error(s string) string { return errorStyle.Render(s) }

// Warn renders s in amber.
func Warn(s string) string { return warnStyle.Render(s) }

// Accent renders s in the hub's cyan accent color.
func Accent(s string) string { return accentStyle.Render(s) }
