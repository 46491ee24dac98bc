package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/ui/theme"
)

// Mark annotates a row once its correctness is known.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return theme.Correct.Render("✓")
	case MarkIncorrect:
		return theme.Incorrect.Render("✗")
	}
	return " "
}

// OptionRow is one line of an OptionList.
type OptionRow struct {
	Text    string
	Checked bool
	Mark    Mark
}

// OptionList renders lettered options with a cursor. Multi lists use
// checkboxes, single lists use radio markers.
type OptionList struct {
	Rows   []OptionRow
	Cursor int
	Multi  bool
}

// Letter returns the option label for index i: A, B, C...
func Letter(i int) string {
	if i < 0 || i >= 26 {
		return fmt.Sprint(i + 1)
	}
	return string(rune('A' + i))
}

// View renders the list.
func (l OptionList) View() string {
	var b strings.Builder
	for i, row := range l.Rows {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		box := "( )"
		if row.Checked {
			box = "(•)"
		}
		if l.Multi {
			box = "[ ]"
			if row.Checked {
				box = "[x]"
			}
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, box, Letter(i), row.Text)

		style := theme.Unselected
		switch {
		case i == l.Cursor:
			style = theme.Selected
		case row.Checked:
			style = lipgloss.NewStyle().Foreground(theme.Manila)
		}
		b.WriteString(style.Render(line) + " " + row.Mark.String() + "\n")
	}
	return b.String()
}
