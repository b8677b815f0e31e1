package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/pickx/internal/picker"
)

var styles = newFormStyles(picker.AccentColor, picker.ActionColor, picker.MutedColor)

// formStyles styles the field list summary and help line around the picker sheet.
type formStyles struct {
	title lipgloss.Style
	name  lipgloss.Style
	value lipgloss.Style
	unset lipgloss.Style
	help  lipgloss.Style
}

func newFormStyles(accent, value, muted string) formStyles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return formStyles{
		title: fg(accent).Bold(true).MarginBottom(1),
		name:  fg(muted),
		value: fg(value).Bold(true),
		unset: fg(muted).Faint(true).Italic(true),
		help:  fg(muted).Italic(true),
	}
}
