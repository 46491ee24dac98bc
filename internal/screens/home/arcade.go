package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/ui/theme"
)

const titleCompact = "C · A · S · E · F · I · L · E"

// renderTitle returns the app title and subtitle centered in cw.
func renderTitle(title, subtitle string, cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	head := lipgloss.NewStyle().Foreground(theme.Manila).Bold(true).Render(titleCompact)
	return center.Render(head) + "\n" +
		center.Render(theme.Title.Render(title)) + "\n" +
		center.Render(theme.Subtitle.Render(subtitle))
}

// renderStatsBar renders the dashboard lines in a double-bordered box.
func renderStatsBar(lines []string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button. Small
// terminals get plain text lines instead.
func renderMenu(labels []string, selected, cw int, compact bool) string {
	var rows []string
	if compact {
		for i, label := range labels {
			if i == selected {
				rows = append(rows, lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.Primary).
					Bold(true).
					Render(" ▸ "+label+" "))
				continue
			}
			rows = append(rows, theme.Unselected.Render("   "+label))
		}
	} else {
		btn := lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		for i, label := range labels {
			if i == selected {
				rows = append(rows, btn.
					Bold(true).
					Foreground(theme.BgDark).
					Background(theme.Primary).
					BorderForeground(theme.Primary).
					Render("▸ "+label))
				continue
			}
			rows = append(rows, btn.
				Foreground(theme.Text).
				BorderForeground(theme.Border).
				Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

// renderBadgeBox centers the badge art in cw.
func renderBadgeBox(v BadgeVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderBadge(v))
}

// renderDesk wraps content in a double-border frame centered in the area.
func renderDesk(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
