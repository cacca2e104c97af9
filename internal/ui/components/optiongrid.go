package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// OptionColumns is the number of options per row.
const OptionColumns = 4

const optionCellWidth = 8

// OptionGrid renders a multiple-choice set as a grid of numbered cells.
type OptionGrid struct {
	Options  []string
	Disabled map[string]bool
	Cursor   int

	// Flash highlights the most recent pick.
	Flash        string
	FlashCorrect bool
}

// NewOptionGrid creates a grid over options with the cursor on the first
// option.
func NewOptionGrid(options []string) OptionGrid {
	return OptionGrid{Options: options, Disabled: map[string]bool{}}
}

// Move shifts the cursor by rows and cols, staying inside the grid.
func (g OptionGrid) Move(rows, cols int) OptionGrid {
	if len(g.Options) == 0 {
		return g
	}
	next := g.Cursor + rows*OptionColumns + cols
	if next >= 0 && next < len(g.Options) {
		g.Cursor = next
	}
	return g
}

// Current returns the option under the cursor.
func (g OptionGrid) Current() (string, bool) {
	return g.At(g.Cursor)
}

// At returns the option at index i.
func (g OptionGrid) At(i int) (string, bool) {
	if i < 0 || i >= len(g.Options) {
		return "", false
	}
	return g.Options[i], true
}

// View renders the grid.
func (g OptionGrid) View() string {
	var rows []string
	for start := 0; start < len(g.Options); start += OptionColumns {
		end := start + OptionColumns
		if end > len(g.Options) {
			end = len(g.Options)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells, " ")...))
	}
	return strings.Join(rows, "\n")
}

func (g OptionGrid) renderCell(i int) string {
	sym := g.Options[i]
	label := runewidth.FillRight(fmt.Sprintf("%d %s", i+1, sym), optionCellWidth)

	border := theme.Border
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	switch {
	case g.Flash == sym && g.FlashCorrect:
		border = theme.Success
		style = theme.Correct
	case g.Flash == sym:
		border = theme.Error
		style = theme.Incorrect
	case g.Disabled[sym]:
		style = theme.Disabled
	case i == g.Cursor:
		border = theme.Primary
		style = theme.Selected
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(style.Render(label))
}
