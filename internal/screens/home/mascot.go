package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casefile/internal/game"
	"github.com/abhisek/casefile/internal/ui/theme"
)

// BadgeVariant selects which detective badge art to display.
type BadgeVariant int

const (
	BadgeIdle        BadgeVariant = iota
	BadgeCelebrating              // top rank reached
	BadgeAlert                    // credibility running low
)

// alertHP is the credibility at or below which the badge raises an alert.
const alertHP = 30

const badgeIdle = `  ╭───╮
 ╱ ◉ ◉ ╲
 │  ▽  │
 ╲ ─── ╱
  ╰─┬─╯`

const badgeCelebrating = `  ╭───╮
 ╱ ★ ★ ╲
 │  ▿  │
 ╲ ─── ╱
  ╰─┬─╯
   ╱ ╲`

const badgeAlert = `  ╭───╮
 ╱ ◉ ◉ ╲ !
 │  ○  │
 ╲ ─── ╱
  ╰─┬─╯`

// VariantFor picks the badge for the current game state.
func VariantFor(st game.State) BadgeVariant {
	switch {
	case st.CurrentHP <= alertHP:
		return BadgeAlert
	case st.CharacterLevel >= game.MaxLevel:
		return BadgeCelebrating
	default:
		return BadgeIdle
	}
}

// RenderBadge returns the badge art for the given variant.
func RenderBadge(v BadgeVariant) string {
	art := badgeIdle
	fg := theme.Primary

	switch v {
	case BadgeCelebrating:
		art = badgeCelebrating
		fg = theme.Manila
	case BadgeAlert:
		art = badgeAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
