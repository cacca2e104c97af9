package session

import "time"

// TimerKind identifies what a scheduled timer does when it fires.
type TimerKind int

const (
	// TimerCountdown advances the countdown by one step.
	TimerCountdown TimerKind = iota
	// TimerEnterQuiz leaves the countdown for the first question.
	TimerEnterQuiz
	// TimerAdvance dismisses the correct overlay and moves on.
	TimerAdvance
	// TimerFinalize dismisses the finish overlay and shows the result.
	TimerFinalize
	// TimerClearWrong dismisses the wrong overlay.
	TimerClearWrong
	// TimerClearFlash removes the highlight on the last pick.
	TimerClearFlash
)

func (k TimerKind) String() string {
	switch k {
	case TimerCountdown:
		return "countdown"
	case TimerEnterQuiz:
		return "enter_quiz"
	case TimerAdvance:
		return "advance"
	case TimerFinalize:
		return "finalize"
	case TimerClearWrong:
		return "clear_wrong"
	case TimerClearFlash:
		return "clear_flash"
	default:
		return "unknown"
	}
}

// Timer is a delayed re-entry into the controller. The caller waits Delay
// and hands it back to Fire. Token is the ID of the session that scheduled
// it; a timer whose session is gone does nothing.
type Timer struct {
	Kind  TimerKind
	Delay time.Duration
	Token string
	Seq   int
}

// Timing holds the dwell times of every scheduled transition.
type Timing struct {
	CountdownStep time.Duration
	GoDwell       time.Duration
	Correct       time.Duration
	Wrong         time.Duration
	Finish        time.Duration
	Flash         time.Duration
}

// DefaultTiming returns the standard dwell times.
func DefaultTiming() Timing {
	return Timing{
		CountdownStep: 1000 * time.Millisecond,
		GoDwell:       900 * time.Millisecond,
		Correct:       650 * time.Millisecond,
		Wrong:         420 * time.Millisecond,
		Finish:        900 * time.Millisecond,
		Flash:         520 * time.Millisecond,
	}
}

// withDefaults fills unset durations from DefaultTiming.
func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.CountdownStep <= 0 {
		t.CountdownStep = d.CountdownStep
	}
	if t.GoDwell <= 0 {
		t.GoDwell = d.GoDwell
	}
	if t.Correct <= 0 {
		t.Correct = d.Correct
	}
	if t.Wrong <= 0 {
		t.Wrong = d.Wrong
	}
	if t.Finish <= 0 {
		t.Finish = d.Finish
	}
	if t.Flash <= 0 {
		t.Flash = d.Flash
	}
	return t
}
