package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the shared form theme: charm base with the purple
// accent used across the rest of the output.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()

	accent := lipgloss.Color("#7D56F4")

	theme.Focused.Title = theme.Focused.Title.Foreground(accent).Bold(true)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(accent)
	theme.Focused.MultiSelectSelector = theme.Focused.MultiSelectSelector.Foreground(accent)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(accent)

	return theme
}
