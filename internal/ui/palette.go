package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/suryansh-23/piiscan/internal/types"
)

const (
	colorCyan   = "#22D3EE"
	colorSky    = "#38BDF8"
	colorBlue   = "#60A5FA"
	colorViolet = "#A78BFA"
	colorPink   = "#F472B6"
	colorRose   = "#FB7185"
	colorAmber  = "#FBBF24"
	colorLime   = "#A3E635"
	colorMuted  = "#94A3B8"
)

var (
	Primary   = lipgloss.Color(colorCyan)
	Secondary = lipgloss.Color(colorViolet)
	Accent    = lipgloss.Color(colorPink)
	Warning   = lipgloss.Color(colorAmber)
	Muted     = lipgloss.Color(colorMuted)
	Palette   = []lipgloss.Color{Primary, lipgloss.Color(colorSky), lipgloss.Color(colorBlue), Secondary, Accent, lipgloss.Color(colorRose)}
)

// CategoryColor returns the badge colour for a category.
func CategoryColor(category types.Category) lipgloss.Color {
	switch category {
	case types.CategorySSN, types.CategoryCreditCard:
		return lipgloss.Color(colorRose)
	case types.CategoryPhone, types.CategoryEmail, types.CategoryHandle:
		return Primary
	case types.CategoryIPv4, types.CategoryIPv6:
		return lipgloss.Color(colorBlue)
	case types.CategoryName, types.CategoryStreetAddress:
		return Warning
	default:
		return lipgloss.Color(colorLime)
	}
}
