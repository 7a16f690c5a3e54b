package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	`        _ _                     `,
	` _ __  (_|_)___  ___ __ _ _ __  `,
	`| '_ \ | | / __|/ __/ _' | '_ \ `,
	`| |_) || | \__ \ (_| (_| | | | |`,
	`| .__/ |_|_|___/\___\__,_|_| |_|`,
	`|_|                             `,
}

// LogoFrame renders a single animated frame.
func LogoFrame(frame int) string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		color := Palette[(frame+i)%len(Palette)]
		lines[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(lines, "\n")
}

// LogoStatic renders the logo with a trailing badge such as a version.
func LogoStatic(badge string) string {
	logo := LogoFrame(0)
	if badge == "" {
		return logo
	}
	return logo + "\n" + lipgloss.NewStyle().Foreground(Muted).Render(badge)
}
