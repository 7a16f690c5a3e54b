package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
)

// Renderer formats verdicts for terminal output. With color disabled the
// output is plain text suitable for pipes and tests.
type Renderer struct {
	color bool
}

// NewRenderer returns a renderer; color should be true only for terminals.
func NewRenderer(color bool) Renderer {
	return Renderer{color: color}
}

// Badge renders a category label.
func (r Renderer) Badge(category types.Category) string {
	if !r.color {
		return string(category)
	}
	return lipgloss.NewStyle().Foreground(CategoryColor(category)).Bold(true).Render(string(category))
}

// Verdict renders the matched categories of v, or "clean".
func (r Renderer) Verdict(v pii.Verdict) string {
	cats := v.Categories()
	if len(cats) == 0 {
		return r.muted("clean")
	}
	parts := make([]string, len(cats))
	for i, category := range cats {
		parts[i] = r.Badge(category)
	}
	return strings.Join(parts, ",")
}

// RecordLine renders a record verdict at its 1-based source line.
func (r Renderer) RecordLine(source string, line int, v pii.Verdict) string {
	loc := fmt.Sprintf("%s:%d", source, line)
	return fmt.Sprintf("%s: %s", r.muted(loc), r.Verdict(v))
}

// Summary formats a one-line scan summary.
func (r Renderer) Summary(total, flagged, allowed int) string {
	prefix := "piiscan:"
	if r.color {
		prefix = lipgloss.NewStyle().Foreground(Primary).Bold(true).Render(prefix)
	}
	if total <= 0 {
		return fmt.Sprintf("%s no records", prefix)
	}
	line := fmt.Sprintf("%s %d of %d %s flagged", prefix, flagged, total, plural(total, "record", "records"))
	if allowed > 0 {
		line += fmt.Sprintf(" (%d allowlisted)", allowed)
	}
	return line
}

func (r Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return lipgloss.NewStyle().Foreground(Muted).Render(s)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
