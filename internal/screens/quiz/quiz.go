// Package quiz is the screen that plays a run: the countdown, then one
// question at a time until the controller reaches its result.
package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elemquiz/internal/router"
	"github.com/abhisek/elemquiz/internal/screen"
	"github.com/abhisek/elemquiz/internal/screens/result"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/ui/components"
	"github.com/abhisek/elemquiz/internal/ui/layout"
)

// QuizScreen renders the controller's countdown and quiz states and
// forwards key presses as answers.
type QuizScreen struct {
	ctrl    *session.Controller
	initial []session.Timer

	// cursor state survives between renders; options and flashes come
	// from the controller.
	optionCursor int
	board        components.Board
	input        components.SymbolInput

	// question tracks which question the cursors belong to.
	question int

	done bool

	// schedule turns controller timers into commands.
	schedule func([]session.Timer) tea.Cmd
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a run the controller has just started.
// timers are the ones returned by the call that started it.
func New(ctrl *session.Controller, timers []session.Timer) *QuizScreen {
	return &QuizScreen{
		ctrl:     ctrl,
		initial:  timers,
		board:    components.NewBoard(false),
		input:    components.NewSymbolInput(),
		question: -1,
		schedule: Schedule,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.schedule(s.initial), s.input.Init())
}

func (s *QuizScreen) Title() string {
	v := s.ctrl.View()
	title := v.Mode.Meta().Title
	if v.Phase == session.PhaseReview {
		title += "（復習）"
	}
	return title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	v := s.ctrl.View()
	if v.Screen == session.ScreenCountdown {
		return []layout.KeyHint{{Key: "Esc", Description: "ホームへ"}}
	}
	if v.Mode.UsesOptions() {
		return []layout.KeyHint{
			{Key: "1-8", Description: "選ぶ"},
			{Key: "←→↑↓", Description: "移動"},
			{Key: "Enter", Description: "決定"},
			{Key: "文字入力", Description: "記号で答える"},
			{Key: "Esc", Description: "ホームへ"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "マスを移動"},
		{Key: "Enter", Description: "決定"},
		{Key: "Esc", Description: "ホームへ"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerMsg:
		return s.handleTimer(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTimer(msg TimerMsg) (screen.Screen, tea.Cmd) {
	next := s.ctrl.Fire(msg.Timer)
	s.syncQuestion()
	if s.ctrl.Screen() == session.ScreenResult && !s.done {
		s.done = true
		resultScreen := result.New(s.ctrl, s.factory)
		return s, tea.Batch(s.schedule(next), func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultScreen}
		})
	}
	return s, s.schedule(next)
}

// factory builds the screen for a run started from the result screen.
func (s *QuizScreen) factory(timers []session.Timer) screen.Screen {
	next := New(s.ctrl, timers)
	next.schedule = s.schedule
	return next
}

// syncQuestion resets per-question cursor state when the controller moves
// to a new question.
func (s *QuizScreen) syncQuestion() {
	v := s.ctrl.View()
	if v.Screen != session.ScreenQuiz || v.Progress == s.question {
		return
	}
	s.question = v.Progress
	s.optionCursor = 0
	s.input.Reset()
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Screen() != session.ScreenQuiz {
		return s, nil
	}
	s.syncQuestion()
	if s.ctrl.View().Mode.UsesOptions() {
		return s.handleOptionKey(msg)
	}
	return s.handleBoardKey(msg)
}

func (s *QuizScreen) handleOptionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	v := s.ctrl.View()
	grid := components.NewOptionGrid(v.Options)
	grid.Cursor = s.optionCursor

	switch key := msg.String(); key {
	case "left":
		grid = grid.Move(0, -1)
	case "right":
		grid = grid.Move(0, 1)
	case "up":
		grid = grid.Move(-1, 0)
	case "down":
		grid = grid.Move(1, 0)
	case "enter", "space":
		if typed := s.input.Symbol(); typed != "" {
			s.input.Reset()
			return s, s.answer(typed)
		}
		if sym, ok := grid.Current(); ok {
			return s, s.answer(sym)
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if sym, ok := grid.At(i); ok {
				s.optionCursor = i
				return s, s.answer(sym)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	s.optionCursor = grid.Cursor
	return s, nil
}

func (s *QuizScreen) handleBoardKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.board = s.board.Move(0, -1)
	case "right", "l":
		s.board = s.board.Move(0, 1)
	case "up", "k":
		s.board = s.board.Move(-1, 0)
	case "down", "j":
		s.board = s.board.Move(1, 0)
	case "enter", "space":
		if n, ok := s.board.Current(); ok {
			return s, s.schedule(s.ctrl.AnswerCell(n))
		}
	}
	return s, nil
}

func (s *QuizScreen) answer(sym string) tea.Cmd {
	return s.schedule(s.ctrl.Answer(sym))
}
