package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Banner renders text on a solid background of the given hex color, used to
// signal the current stage.
func Banner(hexColor, text string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1)

	return style.Render(text)
}

// InverseBanner renders the flicker "on" frame: same banner with the colors
// swapped so the toggle is visible on any terminal.
func InverseBanner(hexColor, text string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color("#FFFFFF")).
		Foreground(lipgloss.Color(hexColor)).
		Bold(true).
		Padding(0, 1)

	return style.Render(text)
}
