// Package session drives a quiz run: countdown, question sequencing,
// answer checking, scoring, and the review of missed questions.
//
// The controller never blocks. Operations that need a delayed follow-up
// return Timers; the caller schedules them and passes each back to Fire.
// Every Timer carries the ID of the session that created it, so timers
// that outlive their session are ignored.
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/elemquiz/internal/elements"
	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/randutil"
	"github.com/abhisek/elemquiz/internal/records"
)

// OptionCount is the size of the choice set in option modes.
const OptionCount = 8

// RecordStore is the best-record persistence the controller consults when
// a Main run finishes.
type RecordStore interface {
	Read(ctx context.Context, m mode.Mode) (*records.BestRecord, bool)
	Write(ctx context.Context, m mode.Mode, seconds float64)
}

// Options configures a Controller. Zero values are replaced by defaults.
type Options struct {
	Records RecordStore
	Rand    *rand.Rand
	Now     func() time.Time
	Timing  Timing
	Logger  *slog.Logger

	// NewID generates session identifiers. Defaults to random UUIDs.
	NewID func() string
}

// Controller owns the single live session and the last finished run.
type Controller struct {
	records RecordStore
	rng     *rand.Rand
	now     func() time.Time
	timing  Timing
	logger  *slog.Logger
	newID   func() string

	screen   Screen
	sess     *Session
	lastMode mode.Mode
	result   *Result
	review   *ReviewSummary

	// bests caches the stored records; nil until first read.
	bests map[mode.Mode]records.BestRecord
}

// New creates a Controller on the home screen.
func New(opts Options) *Controller {
	c := &Controller{
		records: opts.Records,
		rng:     opts.Rand,
		now:     opts.Now,
		timing:  opts.Timing.withDefaults(),
		logger:  opts.Logger,
		newID:   opts.NewID,
		screen:  ScreenHome,
	}
	if c.records == nil {
		c.records = records.New(records.NewMemoryKV())
	}
	if c.rng == nil {
		c.rng = randutil.NewTimeSeeded()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.newID == nil {
		c.newID = func() string { return uuid.New().String() }
	}
	return c
}

// Screen returns the current top-level state.
func (c *Controller) Screen() Screen { return c.screen }

// Start begins a Main run of m. It is valid from Home and Result.
func (c *Controller) Start(m mode.Mode) []Timer {
	if c.screen != ScreenHome && c.screen != ScreenResult {
		return nil
	}
	c.result = nil
	c.review = nil
	order := randutil.Shuffle(c.rng, elements.GameplayNumbers())
	return c.begin(m, PhaseMain, order)
}

// Retry starts a new Main run in the mode that was just played.
func (c *Controller) Retry() []Timer {
	if c.screen != ScreenResult {
		return nil
	}
	return c.Start(c.lastMode)
}

// StartReview replays the questions missed in the last Main run. It is
// valid only on the result of a Main run that missed at least one question.
func (c *Controller) StartReview() []Timer {
	if c.screen != ScreenResult || c.sess == nil || c.sess.Phase != PhaseMain {
		return nil
	}
	if c.result == nil || len(c.result.Missed) == 0 {
		return nil
	}
	c.review = nil
	order := randutil.Shuffle(c.rng, c.result.Missed)
	return c.begin(c.result.Mode, PhaseReview, order)
}

// BackHome abandons whatever is in progress. Pending timers become stale.
func (c *Controller) BackHome() {
	if c.sess != nil && c.screen != ScreenResult {
		c.logger.Info("session abandoned", "session_id", c.sess.ID, "screen", c.screen.String())
	}
	c.sess = nil
	c.result = nil
	c.review = nil
	c.screen = ScreenHome
}

func (c *Controller) begin(m mode.Mode, phase Phase, order []int) []Timer {
	c.sess = newSession(c.newID(), m, phase, order)
	c.lastMode = m
	c.screen = ScreenCountdown
	c.logger.Info("session started",
		"session_id", c.sess.ID,
		"mode", m.ID(),
		"phase", phase.String(),
		"questions", len(order),
	)
	return []Timer{c.timer(TimerCountdown, c.timing.CountdownStep)}
}

func (c *Controller) timer(kind TimerKind, d time.Duration) Timer {
	return Timer{Kind: kind, Delay: d, Token: c.sess.ID}
}

// Fire applies a timer that has elapsed. Timers from an earlier session,
// or that no longer match the current state, do nothing.
func (c *Controller) Fire(t Timer) []Timer {
	if c.sess == nil || t.Token != c.sess.ID {
		return nil
	}
	switch t.Kind {
	case TimerCountdown:
		return c.stepCountdown()
	case TimerEnterQuiz:
		c.enterQuiz()
	case TimerAdvance:
		return c.advance()
	case TimerFinalize:
		if c.screen == ScreenQuiz && c.sess.Overlay != nil && c.sess.Overlay.Kind == OverlayFinish {
			c.sess.Overlay = nil
			c.finalize()
		}
	case TimerClearWrong:
		if c.screen == ScreenQuiz && c.sess.Overlay != nil && c.sess.Overlay.Kind == OverlayWrong {
			c.sess.Overlay = nil
		}
	case TimerClearFlash:
		if t.Seq == c.sess.flashSeq {
			c.sess.Flash = nil
		}
	}
	return nil
}

func (c *Controller) stepCountdown() []Timer {
	if c.screen != ScreenCountdown {
		return nil
	}
	last := len(CountdownLabels) - 1
	if c.sess.CountdownStep >= last {
		return nil
	}
	c.sess.CountdownStep++
	if c.sess.CountdownStep == last {
		return []Timer{c.timer(TimerEnterQuiz, c.timing.GoDwell)}
	}
	return []Timer{c.timer(TimerCountdown, c.timing.CountdownStep)}
}

func (c *Controller) enterQuiz() {
	if c.screen != ScreenCountdown {
		return
	}
	c.screen = ScreenQuiz
	if len(c.sess.Order) == 0 || c.sess.questionReady {
		return
	}
	if c.sess.Phase == PhaseMain {
		c.sess.Started = c.now()
	}
	c.buildQuestion(0)
}

func (c *Controller) buildQuestion(i int) {
	s := c.sess
	s.Index = i
	s.questionReady = true
	s.Disabled = make(map[string]bool)
	s.MistakeThisQuestion = false
	s.Flash = nil
	s.Options = nil

	if !s.Mode.UsesOptions() {
		return
	}
	correct := elements.SymbolFor(s.Order[i])
	set := append([]string{correct}, randutil.SampleDistractors(c.rng, OptionCount-1, correct)...)
	s.Options = randutil.Shuffle(c.rng, set)
}

// AnswerCell answers with the board cell holding atomic number n.
func (c *Controller) AnswerCell(n int) []Timer {
	if _, ok := elements.PositionOf(n); !ok {
		return nil
	}
	return c.Answer(elements.SymbolFor(n))
}

// Answer submits candidate as the answer to the current question.
// Picks are ignored outside the quiz, while an overlay is showing, and for
// candidates already tried on this question.
func (c *Controller) Answer(candidate string) []Timer {
	if c.screen != ScreenQuiz {
		return nil
	}
	s := c.sess
	n, ok := s.Current()
	if !ok || s.Overlay != nil || s.Disabled[candidate] {
		return nil
	}
	if !c.offered(candidate) {
		return nil
	}

	correct := candidate == elements.SymbolFor(n)
	s.flashSeq++
	s.Flash = &Flash{Symbol: candidate, Correct: correct}
	flash := Timer{Kind: TimerClearFlash, Delay: c.timing.Flash, Token: s.ID, Seq: s.flashSeq}

	if correct {
		if s.MistakeThisQuestion {
			s.markMissed(n)
		}
		s.Overlay = &Overlay{Kind: OverlayCorrect, Text: "正解！"}
		return []Timer{flash, c.timer(TimerAdvance, c.timing.Correct)}
	}

	s.WrongCount++
	s.MistakeThisQuestion = true
	s.Disabled[candidate] = true
	sub := "もう一度"
	if !s.Mode.UsesOptions() {
		sub = "別のマスをタップ"
	}
	s.Overlay = &Overlay{Kind: OverlayWrong, Text: "不正解", SubText: sub}
	return []Timer{flash, c.timer(TimerClearWrong, c.timing.Wrong)}
}

// offered reports whether candidate is something the player could pick on
// the current question.
func (c *Controller) offered(candidate string) bool {
	if c.sess.Mode.UsesOptions() {
		for _, o := range c.sess.Options {
			if o == candidate {
				return true
			}
		}
		return false
	}
	e, ok := elements.BySymbol(candidate)
	if !ok {
		return false
	}
	_, onBoard := elements.PositionOf(e.Number)
	return onBoard
}

func (c *Controller) advance() []Timer {
	s := c.sess
	if c.screen != ScreenQuiz || s.Overlay == nil || s.Overlay.Kind != OverlayCorrect {
		return nil
	}
	s.Overlay = nil
	next := s.Index + 1
	if next < len(s.Order) {
		c.buildQuestion(next)
		return nil
	}
	if s.Phase == PhaseMain {
		s.Overlay = &Overlay{Kind: OverlayFinish, Text: "終了！"}
	} else {
		s.Overlay = &Overlay{Kind: OverlayFinish, Text: "復習完了！", SubText: "結果を見てみよう"}
	}
	return []Timer{c.timer(TimerFinalize, c.timing.Finish)}
}

func (c *Controller) finalize() {
	s := c.sess
	s.questionReady = false
	s.Flash = nil
	c.screen = ScreenResult

	if s.Phase == PhaseReview {
		c.review = &ReviewSummary{Mode: s.Mode, WrongCount: s.WrongCount, Missed: s.Missed()}
		c.logger.Info("review finished",
			"session_id", s.ID,
			"mode", s.Mode.ID(),
			"wrong", s.WrongCount,
		)
		return
	}

	end := c.now()
	start := s.Started
	if start.IsZero() {
		start = end
	}
	elapsed := clampSeconds(end.Sub(start).Seconds())

	ctx := context.Background()
	var prev *float64
	if rec, ok := c.records.Read(ctx, s.Mode); ok {
		v := rec.ElapsedSeconds
		prev = &v
	}
	isNewBest := prev == nil || elapsed < *prev
	if isNewBest {
		c.records.Write(ctx, s.Mode, elapsed)
	}
	c.refreshBests()

	c.result = &Result{
		Mode:           s.Mode,
		ElapsedSeconds: elapsed,
		WrongCount:     s.WrongCount,
		Missed:         s.Missed(),
		IsNewBest:      isNewBest,
		PreviousBest:   prev,
		Grade:          grade.For(elapsed),
	}
	c.logger.Info("session finished",
		"session_id", s.ID,
		"mode", s.Mode.ID(),
		"elapsed_seconds", elapsed,
		"wrong", s.WrongCount,
		"missed", len(c.result.Missed),
		"new_best", isNewBest,
	)
}

// Bests returns the best record of every mode that has one. Records are
// read on first use and again after every Main run.
func (c *Controller) Bests() map[mode.Mode]records.BestRecord {
	if c.bests == nil {
		c.refreshBests()
	}
	out := make(map[mode.Mode]records.BestRecord, len(c.bests))
	for m, r := range c.bests {
		out[m] = r
	}
	return out
}

func (c *Controller) refreshBests() {
	ctx := context.Background()
	c.bests = make(map[mode.Mode]records.BestRecord)
	for _, m := range mode.All() {
		if rec, ok := c.records.Read(ctx, m); ok {
			c.bests[m] = *rec
		}
	}
}
