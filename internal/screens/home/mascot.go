package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default cyan flask
	MascotCelebrating                      // Amber, star eyes: an S-grade best exists
)

const mascotIdle = `  ┌─┐
  │H│
 ╱   ╲
│ ◉ ◉ │
 ╲_▽_╱`

const mascotCelebrating = `  ┌─┐
  │S│
 ╱   ╲
│ ★ ★ │
 ╲_▿_╱`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if variant == MascotCelebrating {
		art = mascotCelebrating
		fg = theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
