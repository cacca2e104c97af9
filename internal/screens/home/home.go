// Package home is the mode-selection screen.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/records"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/screens/help"
	"github.com/abhisek/elemquiz/internal/screens/history"
	"github.com/abhisek/elemquiz/internal/screens/quiz"
	"github.com/abhisek/elemquiz/internal/screens/table"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/layout"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// HomeScreen lists the modes with their best times.
type HomeScreen struct {
	ctrl *session.Controller
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. The cursor starts on defaultMode. The records
// entry is shown only when src is non-nil.
func New(ctrl *session.Controller, defaultMode mode.Mode, src history.Source) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl}

	var items []components.MenuItem
	for _, m := range mode.All() {
		meta := m.Meta()
		items = append(items, components.MenuItem{
			Label:  meta.Title,
			Detail: meta.Detail,
			Accent: theme.ModeColor(m),
			Action: func() tea.Cmd { return h.start(m) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "周期表を見る", Action: func() tea.Cmd {
			return push(table.New())
		}},
	)
	if src != nil {
		items = append(items, components.MenuItem{Label: "記録", Action: func() tea.Cmd {
			return push(history.New(src))
		}})
	}
	items = append(items,
		components.MenuItem{Label: "あそび方", Action: func() tea.Cmd {
			return push(help.New())
		}},
		components.MenuItem{Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	for i, m := range mode.All() {
		if m == defaultMode {
			h.menu.Selected = i
		}
	}
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) start(m mode.Mode) tea.Cmd {
	timers := h.ctrl.Start(m)
	if len(timers) == 0 {
		return nil
	}
	return push(quiz.New(h.ctrl, timers))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選ぶ"},
		{Key: "Enter", Description: "スタート"},
		{Key: "1-9", Description: "すぐ選ぶ"},
		{Key: "Ctrl+C", Description: "終了"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 32 || width < 100

	cw := components.ContentWidth(width)
	bests := h.ctrl.Bests()

	var sections []string
	sections = append(sections, renderTitle(cw))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(bests), cw))
	}
	sections = append(sections, renderBests(bests, cw))
	sections = append(sections, h.menu.View(cw))

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

func mascotFor(bests map[mode.Mode]records.BestRecord) MascotVariant {
	for _, b := range bests {
		if grade.For(b.ElapsedSeconds).Tier == grade.TierS {
			return MascotCelebrating
		}
	}
	return MascotIdle
}
