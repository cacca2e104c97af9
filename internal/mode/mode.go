// Package mode defines the three question modes and their display text.
package mode

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when a mode identifier cannot be parsed.
var ErrUnknown = errors.New("unknown mode")

// Mode selects how questions are prompted and answered.
type Mode int

const (
	AtomicNumber  Mode = iota // atomic number shown, pick the symbol
	ElementName               // Japanese name shown, pick the symbol
	PeriodicTable             // symbol shown, tap its board cell
)

// All returns every mode in menu order.
func All() []Mode {
	return []Mode{AtomicNumber, ElementName, PeriodicTable}
}

// ID returns the stable identifier used in storage keys and flags.
func (m Mode) ID() string {
	switch m {
	case ElementName:
		return "element_name"
	case PeriodicTable:
		return "periodic_table"
	default:
		return "atomic_number"
	}
}

func (m Mode) String() string {
	return m.ID()
}

// Parse converts an identifier back to a Mode.
func Parse(s string) (Mode, error) {
	for _, m := range All() {
		if m.ID() == s {
			return m, nil
		}
	}
	return AtomicNumber, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Meta holds the user-facing text for a mode.
type Meta struct {
	Title      string
	Detail     string
	QuizPrompt string
}

// Meta returns the display text for m.
func (m Mode) Meta() Meta {
	switch m {
	case ElementName:
		return Meta{
			Title:      "元素名モード",
			Detail:     "元素名に合う元素記号をタップ",
			QuizPrompt: "この元素の元素記号は？",
		}
	case PeriodicTable:
		return Meta{
			Title:      "周期表モード",
			Detail:     "周期表で、正しいマスをタップ",
			QuizPrompt: "周期表で場所をタップ",
		}
	default:
		return Meta{
			Title:      "原子番号モード",
			Detail:     "原子番号に合う元素記号をタップ",
			QuizPrompt: "この原子番号の元素記号は？",
		}
	}
}

// UsesOptions reports whether the mode answers from a multiple-choice set.
func (m Mode) UsesOptions() bool {
	return m != PeriodicTable
}
