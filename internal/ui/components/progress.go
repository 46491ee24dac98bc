package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/ui/theme"
)

// ProgressBar displays a horizontal meter such as credibility or case
// progress.
type ProgressBar struct {
	Label   string
	Percent float64

	// Value is printed after the bar when non-empty, e.g. "70/100".
	Value string

	// Danger turns the bar red when it runs low.
	Danger bool

	Width int
}

// NewProgressBar creates a progress bar filled to percent (0..1).
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// Fill returns the number of filled cells for a bar of barWidth cells.
func (p ProgressBar) Fill(barWidth int) int {
	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := ""
	if p.Value != "" {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %s", p.Value))
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.Fill(barWidth)
	result += theme.MeterColor(p.Percent, p.Danger).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return result + suffix
}
