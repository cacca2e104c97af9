// Package result shows a finished run and offers review, retry, and home.
package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/layout"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// QuizFactory builds the screen for a run started from the result.
type QuizFactory func(timers []session.Timer) screen.Screen

// ResultScreen displays the outcome of the run that just finished.
type ResultScreen struct {
	ctrl    *session.Controller
	newQuiz QuizFactory
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen over the controller's finished run.
func New(ctrl *session.Controller, newQuiz QuizFactory) *ResultScreen {
	r := &ResultScreen{ctrl: ctrl, newQuiz: newQuiz}

	v := ctrl.View()
	reviewLabel := "復習"
	if v.ReviewAvailable {
		reviewLabel = fmt.Sprintf("復習（%d問）", len(v.Result.Missed))
	}
	r.buttons = components.NewButtonRow(
		components.Button{Label: reviewLabel, Disabled: !v.ReviewAvailable, OnPress: r.review},
		components.Button{Label: "もう一度", OnPress: r.retry},
		components.Button{Label: "ホームへ", OnPress: r.home},
	)
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	if r.ctrl.View().Phase == session.PhaseReview {
		return "復習結果"
	}
	return "結果"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "選ぶ"},
		{Key: "Enter", Description: "決定"},
	}
	if r.ctrl.View().ReviewAvailable {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "復習"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "ホームへ"})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "r" {
		return r, r.review()
	}
	var cmd tea.Cmd
	r.buttons, cmd = r.buttons.Update(msg)
	return r, cmd
}

func (r *ResultScreen) review() tea.Cmd {
	return r.startRun(r.ctrl.StartReview())
}

func (r *ResultScreen) retry() tea.Cmd {
	return r.startRun(r.ctrl.Retry())
}

func (r *ResultScreen) startRun(timers []session.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	next := r.newQuiz(timers)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (r *ResultScreen) home() tea.Cmd {
	r.ctrl.BackHome()
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (r *ResultScreen) View(width, height int) string {
	v := r.ctrl.View()
	cw := components.ContentWidth(width)

	var body string
	if v.Phase == session.PhaseReview {
		body = renderReview(v, cw)
	} else {
		body = renderMain(v, cw)
	}

	content := body + "\n\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, r.buttons.View())
	return components.Panel(content, width, height)
}

func renderMain(v session.View, cw int) string {
	res := v.Result
	if res == nil {
		return ""
	}
	var sections []string

	if res.IsNewBest {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).Align(lipgloss.Center).
			Foreground(theme.Success).Bold(true).
			Render("ベスト更新！"))
	}

	tier := lipgloss.NewStyle().Foreground(tierColor(res.Grade.Tier)).Bold(true).
		Render(string(res.Grade.Tier))
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(res.Grade.Title)
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(tier+"  "+title))

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	stats := dim.Render("タイム ") + val.Render(grade.FormatSeconds(res.ElapsedSeconds)+"s") +
		"    " + dim.Render("ミス ") + val.Render(fmt.Sprintf("%d", res.WrongCount))
	if res.PreviousBest != nil {
		stats += "    " + dim.Render("前回ベスト ") + val.Render(grade.FormatSeconds(*res.PreviousBest)+"s")
	}
	sections = append(sections, components.Card(stats, cw, theme.ModeColor(res.Mode)))

	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Foreground(theme.Text).Render(res.Grade.Comment))

	if len(res.Missed) > 0 {
		sections = append(sections,
			dim.Render(fmt.Sprintf("間違えた（または迷った）問題：%d問", len(res.Missed)))+"\n"+
				renderMissed(res.Missed))
	}
	return strings.Join(sections, "\n\n")
}

func renderReview(v session.View, cw int) string {
	rev := v.Review
	if rev == nil {
		return ""
	}
	targets := 0
	if v.Result != nil {
		targets = len(v.Result.Missed)
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("復習モードが完了しました。"),
		dim.Render(fmt.Sprintf("ミス：%d／復習対象：%d問", rev.WrongCount, targets)),
	}
	card := components.Card(strings.Join(lines, "\n"), cw, theme.Info)
	note := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("間違えた（または迷った）問題は、また本番で試してみよう。")
	return card + "\n\n" + note
}

func renderMissed(missed []int) string {
	parts := make([]string, 0, len(missed))
	for _, n := range missed {
		parts = append(parts, fmt.Sprintf("%d %s %s", n, elements.SymbolFor(n), elements.NameFor(n)))
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(strings.Join(parts, " · "))
}

func tierColor(t grade.Tier) color.Color {
	switch t {
	case grade.TierS:
		return theme.Accent
	case grade.TierA:
		return theme.Success
	case grade.TierB:
		return theme.Primary
	default:
		return theme.Secondary
	}
}
