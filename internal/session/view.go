package session

import (
	"sort"
	"strconv"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/mode"
)

// View is a read-only snapshot of everything a front end needs to draw the
// controller's state. Slices in a View are copies.
type View struct {
	Screen Screen
	Phase  Phase
	Mode   mode.Mode

	// CountdownLabel is set on the countdown screen.
	CountdownLabel string

	// PromptMain is the atomic number, element name, or symbol being asked.
	PromptMain string
	PromptSub  string

	Options  []string
	Disabled []string

	// DisabledCells lists atomic numbers already tried wrong in board mode.
	DisabledCells []int

	Flash   *Flash
	Overlay *Overlay

	// Progress is 1-based; Total is the number of questions in the run.
	Progress int
	Total    int

	Result *Result
	Review *ReviewSummary

	// ReviewAvailable reports whether StartReview would start a run.
	ReviewAvailable bool
}

// View projects the current state.
func (c *Controller) View() View {
	v := View{
		Screen: c.screen,
		Mode:   c.lastMode,
		Result: c.result,
		Review: c.review,
	}
	s := c.sess
	if s == nil {
		return v
	}
	v.Phase = s.Phase
	v.Mode = s.Mode
	v.Total = len(s.Order)

	switch c.screen {
	case ScreenCountdown:
		if s.CountdownStep >= 0 && s.CountdownStep < len(CountdownLabels) {
			v.CountdownLabel = CountdownLabels[s.CountdownStep]
		}
	case ScreenQuiz:
		v.Progress = s.Index + 1
		if n, ok := s.Current(); ok {
			v.PromptMain = promptFor(s.Mode, n)
			v.PromptSub = s.Mode.Meta().QuizPrompt
		}
		v.Options = append([]string(nil), s.Options...)
		v.Disabled = disabledList(s.Disabled)
		if !s.Mode.UsesOptions() {
			v.DisabledCells = disabledCells(s.Disabled)
		}
		if s.Flash != nil {
			f := *s.Flash
			v.Flash = &f
		}
		if s.Overlay != nil {
			o := *s.Overlay
			v.Overlay = &o
		}
	case ScreenResult:
		v.Progress = len(s.Order)
		v.ReviewAvailable = s.Phase == PhaseMain && c.result != nil && len(c.result.Missed) > 0
	}
	return v
}

func promptFor(m mode.Mode, n int) string {
	switch m {
	case mode.ElementName:
		return elements.NameFor(n)
	case mode.PeriodicTable:
		return elements.SymbolFor(n)
	default:
		return strconv.Itoa(n)
	}
}

func disabledList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for sym := range set {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

func disabledCells(set map[string]bool) []int {
	out := make([]int, 0, len(set))
	for sym := range set {
		if e, ok := elements.BySymbol(sym); ok {
			out = append(out, e.Number)
		}
	}
	sort.Ints(out)
	return out
}
