// Package history lists the best time recorded for each mode.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/records"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/ui/layout"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// Source provides every mode's best record.
type Source interface {
	All(ctx context.Context) map[mode.Mode]records.BestRecord
}

type historyLoadedMsg struct {
	Bests map[mode.Mode]records.BestRecord
}

// HistoryScreen displays best records, one row per mode.
type HistoryScreen struct {
	source   Source
	bests    map[mode.Mode]records.BestRecord
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(source Source) *HistoryScreen {
	return &HistoryScreen{
		source:   source,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{Bests: s.source.All(context.Background())}
	}
}

func (s *HistoryScreen) Title() string {
	return "記録"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "くわしく"},
		{Key: "↑↓", Description: "選ぶ"},
		{Key: "Esc", Description: "もどる"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.bests = msg.Bests
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(mode.All())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  読みこみ中...")
	}
	if len(s.bests) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  まだ記録がありません。本番に挑戦しよう！")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, m := range mode.All() {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		best, ok := s.bests[m]
		line := fmt.Sprintf("%s%s  --", prefix, m.Meta().Title)
		if ok {
			dateStr := "日付なし"
			if !best.RecordedAt.IsZero() {
				dateStr = best.RecordedAt.Local().Format("2006/01/02")
			}
			line = fmt.Sprintf("%s%s  %ss  %s  %s",
				prefix, m.Meta().Title, grade.FormatSeconds(best.ElapsedSeconds),
				grade.For(best.ElapsedSeconds).Tier, dateStr)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.ModeColor(m)).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := "    この記録はまだありません"
			if ok {
				g := grade.For(best.ElapsedSeconds)
				detail = "    " + g.Title + " " + g.Comment
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
