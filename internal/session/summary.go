package session

import (
	"github.com/abhisek/elemquiz/internal/grade"
	"github.com/abhisek/elemquiz/internal/mode"
)

// MaxElapsedSeconds caps the recorded time of a run.
const MaxElapsedSeconds = 9999

// Result is the outcome of a finished Main run.
type Result struct {
	Mode           mode.Mode
	ElapsedSeconds float64
	WrongCount     int
	Missed         []int
	IsNewBest      bool

	// PreviousBest is nil when no record existed before this run.
	PreviousBest *float64

	Grade grade.Grade
}

// ReviewSummary is the outcome of a finished review run. Reviews are not
// timed or graded.
type ReviewSummary struct {
	Mode       mode.Mode
	WrongCount int
	Missed     []int
}

func clampSeconds(sec float64) float64 {
	if sec < 0 {
		return 0
	}
	if sec > MaxElapsedSeconds {
		return MaxElapsedSeconds
	}
	return sec
}
