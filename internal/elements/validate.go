package elements

import (
	"fmt"
	"strings"
)

// validateTable checks the seed data invariants: contiguous numbering,
// unique symbols, and one distinct main-group cell per board element.
func validateTable(elems []Element, pos map[int]Position) error {
	var errs []string

	if len(elems) != MaxNumber {
		errs = append(errs, fmt.Sprintf("expected %d elements, got %d", MaxNumber, len(elems)))
	}

	seen := make(map[string]int, len(elems))
	for i, e := range elems {
		if e.Number != i+1 {
			errs = append(errs, fmt.Sprintf("element at index %d has number %d, want %d", i, e.Number, i+1))
		}
		if e.Symbol == "" {
			errs = append(errs, fmt.Sprintf("element %d has empty symbol", e.Number))
			continue
		}
		if prev, dup := seen[e.Symbol]; dup {
			errs = append(errs, fmt.Sprintf("symbol %q used by %d and %d", e.Symbol, prev, e.Number))
		}
		seen[e.Symbol] = e.Number
	}

	occupied := make(map[Position]int, len(pos))
	for n := 1; n <= GameplayMax; n++ {
		p, ok := pos[n]
		if !ok {
			errs = append(errs, fmt.Sprintf("element %d has no board position", n))
			continue
		}
		if _, ok := Column(p.Group); !ok {
			errs = append(errs, fmt.Sprintf("element %d sits in group %d which is not on the board", n, p.Group))
		}
		if p.Period < 1 || p.Period > Periods {
			errs = append(errs, fmt.Sprintf("element %d has period %d outside 1..%d", n, p.Period, Periods))
		}
		if other, taken := occupied[p]; taken {
			errs = append(errs, fmt.Sprintf("elements %d and %d share period %d group %d", other, n, p.Period, p.Group))
		}
		occupied[p] = n
	}

	if len(errs) > 0 {
		return fmt.Errorf("element table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
