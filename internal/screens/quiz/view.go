package quiz

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/theme"
)

// overlaySlotHeight keeps the layout steady whether or not feedback shows.
const overlaySlotHeight = 5

func (s *QuizScreen) View(width, height int) string {
	v := s.ctrl.View()
	switch v.Screen {
	case session.ScreenCountdown:
		return renderCountdown(v, width, height)
	case session.ScreenQuiz:
		return s.renderQuestion(v, width, height)
	}
	return ""
}

func renderCountdown(v session.View, width, height int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.ModeColor(v.Mode)).
		Bold(true).
		Render(v.CountdownLabel)

	sub := "本番スタート"
	if v.Phase == session.PhaseReview {
		sub = "復習スタート"
	}
	content := label + "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(sub)
	return components.Panel(content, width, height)
}

func (s *QuizScreen) renderQuestion(v session.View, width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	bar := components.NewProgressBar(phaseLabel(v.Phase), v.Progress, v.Total, cw)
	sections = append(sections, bar.View())

	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render(v.PromptSub) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(v.PromptMain)
	sections = append(sections, components.Card(prompt, cw, theme.ModeColor(v.Mode)))

	sections = append(sections, renderOverlaySlot(v.Overlay))

	if v.Mode.UsesOptions() {
		grid := components.NewOptionGrid(v.Options)
		grid.Cursor = s.optionCursor
		for _, d := range v.Disabled {
			grid.Disabled[d] = true
		}
		if v.Flash != nil {
			grid.Flash = v.Flash.Symbol
			grid.FlashCorrect = v.Flash.Correct
		}
		sections = append(sections, grid.View(), s.input.View())
	} else {
		board := s.board
		board.Disabled = make(map[int]bool, len(v.DisabledCells))
		for _, n := range v.DisabledCells {
			board.Disabled[n] = true
		}
		board.Flash = 0
		if v.Flash != nil {
			if e, ok := elements.BySymbol(v.Flash.Symbol); ok {
				board.Flash = e.Number
				board.FlashCorrect = v.Flash.Correct
			}
		}
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Render("まちがえたマスはグレー")
		sections = append(sections, board.View(), hint)
	}

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

func phaseLabel(p session.Phase) string {
	if p == session.PhaseReview {
		return "復習"
	}
	return "本番"
}

func renderOverlaySlot(o *session.Overlay) string {
	if o == nil {
		return strings.Repeat("\n", overlaySlotHeight-1)
	}
	return lipgloss.NewStyle().Height(overlaySlotHeight).
		Render(components.OverlayBox(o.Text, o.SubText, overlayColor(o.Kind)))
}

func overlayColor(k session.OverlayKind) color.Color {
	switch k {
	case session.OverlayCorrect:
		return theme.Success
	case session.OverlayWrong:
		return theme.Error
	default:
		return theme.Info
	}
}
