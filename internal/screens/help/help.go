// Package help shows how to play.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/layout"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

var rules = []string{
	"スタート後、3→2→1→Go! のあとにクイズがはじまります。",
	"正解を選ぶと次の問題へ進みます。",
	"まちがえたら、その選択肢（またはマス）がグレーになって続行します。",
	"20問おわると、タイムと評価が出ます。",
	"結果画面の「復習」で、まちがえた問題だけやり直せます。",
}

const symbolHint = "ヒント：元素記号は大文字のみ（例：H）または大文字＋小文字（例：He）"

// HelpScreen lists the rules and the modes.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "あそび方"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "とじる"},
		{Key: "Esc", Description: "とじる"},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("元素記号クイズ"))
	b.WriteString("\n\n")
	for _, r := range rules {
		b.WriteString(text.Render("・" + r))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, m := range mode.All() {
		meta := m.Meta()
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ModeColor(m)).Bold(true).Render(meta.Title))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta.Detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(cw - 4).Render(symbolHint))

	return components.Panel(components.Card(b.String(), cw, theme.Border), width, height)
}
