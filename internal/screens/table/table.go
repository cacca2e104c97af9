// Package table is the reference viewer: the simplified board with names,
// and the full list of symbols.
package table

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/layout"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

const listColumns = 6

// TableScreen shows element reference data.
type TableScreen struct {
	board    components.Board
	showList bool
	offset   int // first row of the full list in view
}

var _ screen.Screen = (*TableScreen)(nil)
var _ screen.KeyHintProvider = (*TableScreen)(nil)

// New creates a TableScreen on the board view.
func New() *TableScreen {
	return &TableScreen{board: components.NewBoard(true)}
}

func (t *TableScreen) Init() tea.Cmd {
	return nil
}

func (t *TableScreen) Title() string {
	return "周期表"
}

func (t *TableScreen) KeyHints() []layout.KeyHint {
	if t.showList {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "スクロール"},
			{Key: "Tab", Description: "周期表"},
			{Key: "Esc", Description: "もどる"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "移動"},
		{Key: "Tab", Description: "118元素の一覧"},
		{Key: "Esc", Description: "もどる"},
	}
}

func (t *TableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}
	key := kmsg.String()
	if key == "tab" {
		t.showList = !t.showList
		return t, nil
	}

	if t.showList {
		switch key {
		case "up", "k":
			if t.offset > 0 {
				t.offset--
			}
		case "down", "j":
			if t.offset < listRows()-1 {
				t.offset++
			}
		}
		return t, nil
	}

	switch key {
	case "left", "h":
		t.board = t.board.Move(0, -1)
	case "right", "l":
		t.board = t.board.Move(0, 1)
	case "up", "k":
		t.board = t.board.Move(-1, 0)
	case "down", "j":
		t.board = t.board.Move(1, 0)
	}
	return t, nil
}

func (t *TableScreen) View(width, height int) string {
	if t.showList {
		return t.renderList(width, height)
	}
	return t.renderBoard(width, height)
}

func (t *TableScreen) renderBoard(width, height int) string {
	var detail string
	if n, ok := t.board.Current(); ok {
		pos, _ := elements.PositionOf(n)
		detail = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("%d  %s", n, elements.SymbolFor(n))) +
			"  " + lipgloss.NewStyle().Foreground(theme.Text).Render(elements.NameFor(n)) +
			"  " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("第%d周期 %d族", pos.Period, pos.Group))
	}
	return components.Panel(t.board.View()+"\n\n"+detail, width, height)
}

func listRows() int {
	return (elements.MaxNumber + listColumns - 1) / listColumns
}

func (t *TableScreen) renderList(width, height int) string {
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	symbols := elements.Symbols()
	num := lipgloss.NewStyle().Foreground(theme.TextDim)
	sym := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	play := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var lines []string
	for row := t.offset; row < listRows() && len(lines) < visible; row++ {
		var b strings.Builder
		for col := 0; col < listColumns; col++ {
			n := row*listColumns + col + 1
			if n > elements.MaxNumber {
				break
			}
			style := sym
			if n <= elements.GameplayMax {
				style = play
			}
			b.WriteString(num.Render(fmt.Sprintf("%3d ", n)))
			b.WriteString(style.Render(fmt.Sprintf("%-3s", symbols[n-1])))
			b.WriteString("  ")
		}
		lines = append(lines, b.String())
	}
	return components.Panel(strings.Join(lines, "\n"), width, height)
}
