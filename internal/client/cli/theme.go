package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#660066")
	colorGray    = lipgloss.Color("#666666")
	colorError   = lipgloss.Color("#ff4d4f")
	colorSuccess = lipgloss.Color("#4CAF50")
	colorBorder  = lipgloss.Color("#e0e0e0")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorGray)
	hintStyle     = lipgloss.NewStyle().Italic(true).Foreground(colorGray)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

func header(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), subtitleStyle.Render(subtitle))
}

func homeCard(welcome, subtitle, signedInAs string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(welcome),
		subtitleStyle.Render(subtitle),
		"",
		hintStyle.Render(signedInAs),
	)
	return cardStyle.Render(body)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// printErrors shows an alert: a bold title followed by one line per message.
func (a *App) printErrors(title string, msgs ...string) {
	fmt.Fprintln(a.out, errorStyle.Bold(true).Render(title))
	for _, m := range msgs {
		fmt.Fprintln(a.out, errorStyle.Render("  "+m))
	}
}
