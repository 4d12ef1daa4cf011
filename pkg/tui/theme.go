package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is used when the config does not set an accent color.
const DefaultAccent = "99"

// Styles colors each level of the hierarchy the same way in every view.
type Styles struct {
	Title   lipgloss.Style
	Input   lipgloss.Style
	Class   lipgloss.Style
	Student lipgloss.Style
	Subject lipgloss.Style
	Grade   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds the palette around the given accent color.
func NewStyles(accent string) Styles {
	if accent == "" {
		accent = DefaultAccent
	}
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Class:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Student: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Subject: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Grade:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// Theme returns a huh theme with the accent injected into the active
// inputs, cursors, borders and buttons.
func Theme(accent string) *huh.Theme {
	if accent == "" {
		accent = DefaultAccent
	}

	t := huh.ThemeCharm()
	p := lipgloss.Color(accent)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}
