package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for case-file sections.
func ContentWidth(frameWidth int) int {
	// border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// FileCard wraps content in a rounded card at the given content width.
func FileCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Stamp renders a bold bordered label, used for "PERFECT CASE" style banners.
func Stamp(label string, ok bool) string {
	c := theme.Success
	if !ok {
		c = theme.Accent
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(c).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(c).
		Padding(0, 2).
		Render(label)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
