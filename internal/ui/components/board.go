package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

const (
	boardCellWidth  = 5
	boardLabelWidth = 8
)

// Board renders the simplified main-group periodic table and tracks a
// cell cursor.
type Board struct {
	// Period and Column locate the cursor (both 1-based).
	Period int
	Column int

	// Reveal shows numbers and symbols; quiz boards leave cells blank.
	Reveal bool

	// Disabled holds atomic numbers already tried wrong.
	Disabled map[int]bool

	// Flash highlights the most recent pick; zero means none.
	Flash        int
	FlashCorrect bool
}

// NewBoard creates a board with the cursor on hydrogen.
func NewBoard(reveal bool) Board {
	return Board{Period: 1, Column: 1, Reveal: reveal, Disabled: map[int]bool{}}
}

// Move steps the cursor in the given direction, skipping empty cells. The
// cursor stays put when no element lies that way.
func (b Board) Move(dPeriod, dColumn int) Board {
	p, c := b.Period, b.Column
	for {
		p += dPeriod
		c += dColumn
		if p < 1 || p > elements.Periods || c < 1 || c > len(elements.GroupColumns) {
			return b
		}
		if elements.HasCell(p, c) {
			b.Period, b.Column = p, c
			return b
		}
	}
}

// Current returns the atomic number under the cursor.
func (b Board) Current() (int, bool) {
	return elements.NumberAt(b.Period, b.Column)
}

// View renders the board with group and period labels.
func (b Board) View() string {
	var lines []string

	head := strings.Repeat(" ", boardLabelWidth)
	for _, g := range elements.GroupColumns {
		head += runewidth.FillRight(fmt.Sprintf("%d族", g), boardCellWidth+1)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(head))

	for p := 1; p <= elements.Periods; p++ {
		row := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(runewidth.FillRight(fmt.Sprintf("第%d周期", p), boardLabelWidth))
		for c := 1; c <= len(elements.GroupColumns); c++ {
			row += b.renderCell(p, c) + " "
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (b Board) renderCell(period, column int) string {
	n, ok := elements.NumberAt(period, column)
	if !ok {
		return strings.Repeat(" ", boardCellWidth)
	}

	text := "·"
	if b.Reveal {
		text = elements.SymbolFor(n)
	}
	cursor := period == b.Period && column == b.Column
	if cursor {
		text = "[" + text + "]"
	}
	text = centerPad(text, boardCellWidth)

	style := lipgloss.NewStyle().Foreground(theme.Text).Background(theme.BgCard)
	switch {
	case b.Flash == n && b.FlashCorrect:
		style = style.Background(theme.Success).Foreground(theme.BgDark).Bold(true)
	case b.Flash == n:
		style = style.Background(theme.Error).Foreground(theme.BgDark).Bold(true)
	case b.Disabled[n]:
		style = style.Background(theme.Muted).Foreground(theme.TextDim)
	case cursor:
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(text)
}

func centerPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
