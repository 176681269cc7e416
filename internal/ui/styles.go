package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jorbush/rusty-pomo/internal/theme"
)

var (
	gray     = lipgloss.Color("#a0a0a0")
	darkGray = lipgloss.Color("#555555")
	white    = lipgloss.Color("#ffffff")
)

type styles struct {
	frame  lipgloss.Style
	brand  lipgloss.Style
	focus  lipgloss.Style
	brk    lipgloss.Style
	timer  lipgloss.Style
	status lipgloss.Style
	paused lipgloss.Style
	help   lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(darkGray).
			Background(p.Background).
			Padding(1, 2),
		brand:  lipgloss.NewStyle().Bold(true).Foreground(gray),
		focus:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		brk:    lipgloss.NewStyle().Bold(true).Foreground(p.OK),
		timer:  lipgloss.NewStyle().Bold(true).Foreground(white),
		status: lipgloss.NewStyle().Foreground(gray),
		paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Background).
			Background(p.Accent).
			Padding(0, 1),
		help: lipgloss.NewStyle().Foreground(gray),
	}
}
