package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the form theme used by the init and reset prompts.
func Theme() *huh.Theme {
	t := huh.ThemeBase()
	title := lipgloss.NewStyle().Foreground(Primary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(Muted)

	t.Form.Base = t.Form.Base.PaddingLeft(1)
	t.Group.Title = title
	t.Group.Description = muted

	t.Focused.Title = title
	t.Focused.Description = muted
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(Warning).SetString(" !")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(Warning)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(Accent).SetString("> ")
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(Accent).SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(Primary)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Accent).SetString("[*] ")
	t.Focused.UnselectedPrefix = muted.SetString("[ ] ")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(Accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(Primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(Accent)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Muted).Background(lipgloss.Color("0"))

	t.Blurred = t.Focused
	t.Blurred.Title = muted
	t.Blurred.Description = muted
	t.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")
	return t
}
