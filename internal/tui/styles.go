package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles. square and squareWinner mirror the CSS classes of the web page.
type Styles struct {
	square       lipgloss.Style
	squareWinner lipgloss.Style
	cursor       lipgloss.Style
	status       lipgloss.Style
	move         lipgloss.Style
	moveCurrent  lipgloss.Style
	toggle       lipgloss.Style
	help         lipgloss.Style
}

const squareWidth = 5

func createStyles() *Styles {
	base := lipgloss.NewStyle().
		Width(squareWidth).
		Align(lipgloss.Center).
		Bold(true)

	return &Styles{
		square: base.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF")),
		squareWinner: base.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF99")),
		cursor: lipgloss.NewStyle().
			Reverse(true),
		status: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		move: lipgloss.NewStyle(),
		moveCurrent: lipgloss.NewStyle().
			Bold(true),
		toggle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}
