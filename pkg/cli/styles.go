package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of terminal output.
type Theme struct {
	Primary lipgloss.Color // Labels and borders
	Dim     lipgloss.Color // Secondary text
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Value:  lipgloss.NewStyle(),
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Dim).Padding(0, 1),
	}
}

// RenderTable renders label/value rows as an aligned two-column table in a
// rounded box, with an optional title line.
func (s Styles) RenderTable(title string, rows [][2]string) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	var lines []string
	if title != "" {
		lines = append(lines, s.Title.Render(title), "")
	}
	for _, r := range rows {
		label := s.Label.Render(r[0])
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r[0]))
		lines = append(lines, label+pad+"  "+s.Value.Render(r[1]))
	}
	return s.Border.Render(strings.Join(lines, "\n"))
}
