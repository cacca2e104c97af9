package session

import (
	"time"

	"github.com/abhisek/elemquiz/internal/mode"
)

// Screen is the top-level state the controller is in.
type Screen int

const (
	ScreenHome      Screen = iota // Mode selection
	ScreenCountdown               // "3", "2", "1", "Go!"
	ScreenQuiz                    // Serving questions
	ScreenResult                  // Showing the finished run
)

func (s Screen) String() string {
	switch s {
	case ScreenCountdown:
		return "countdown"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	default:
		return "home"
	}
}

// Phase distinguishes the timed run from the review of its misses.
type Phase int

const (
	PhaseMain   Phase = iota // Timed, scored run over 1..20
	PhaseReview              // Untimed replay of the previous run's misses
)

func (p Phase) String() string {
	if p == PhaseReview {
		return "review"
	}
	return "main"
}

// OverlayKind identifies the feedback overlay being shown.
type OverlayKind int

const (
	OverlayCorrect OverlayKind = iota
	OverlayWrong
	OverlayFinish
)

// Overlay is transient feedback covering the quiz. Answers are ignored
// while one is up.
type Overlay struct {
	Kind    OverlayKind
	Text    string
	SubText string
}

// Flash highlights the option or cell that was just picked.
type Flash struct {
	Symbol  string
	Correct bool
}

// CountdownLabels are shown in order before a run starts.
var CountdownLabels = []string{"3", "2", "1", "Go!"}

// Session is the mutable state of one run. A fresh Session is created by
// every start and discarded on return home.
type Session struct {
	// ID identifies this run; timers carry it as their token.
	ID string

	Mode  mode.Mode
	Phase Phase

	// Order is the sequence of atomic numbers to ask.
	Order []int

	// Index is the position in Order of the current question.
	Index int

	WrongCount int

	// missed records atomic numbers answered wrong before right, in the
	// order they were solved.
	missed    []int
	missedSet map[int]bool

	// MistakeThisQuestion is set once the current question has a wrong pick.
	MistakeThisQuestion bool

	// Started is the timing anchor; zero until the quiz screen is entered.
	Started time.Time

	CountdownStep int

	// Options is the shuffled choice set for option modes.
	Options []string

	// Disabled holds symbols already tried wrong on this question.
	Disabled map[string]bool

	Overlay *Overlay
	Flash   *Flash

	// flashSeq invalidates older flash-clear timers.
	flashSeq int

	// questionReady is false until the first question is built.
	questionReady bool
}

func newSession(id string, m mode.Mode, phase Phase, order []int) *Session {
	return &Session{
		ID:        id,
		Mode:      m,
		Phase:     phase,
		Order:     order,
		missedSet: make(map[int]bool),
		Disabled:  make(map[string]bool),
	}
}

// Current returns the atomic number being asked, or false when no
// question is active.
func (s *Session) Current() (int, bool) {
	if s == nil || !s.questionReady || s.Index < 0 || s.Index >= len(s.Order) {
		return 0, false
	}
	return s.Order[s.Index], true
}

// Missed returns the atomic numbers that were answered wrong before right.
func (s *Session) Missed() []int {
	out := make([]int, len(s.missed))
	copy(out, s.missed)
	return out
}

func (s *Session) markMissed(n int) {
	if s.missedSet[n] {
		return
	}
	s.missedSet[n] = true
	s.missed = append(s.missed, n)
}
