package elements

// Position is a cell on the simplified board.
type Position struct {
	Period int
	Group  int
}

// GroupColumns lists the groups shown on the board, left to right.
// Groups 3..12 are left out because no gameplay element sits there.
var GroupColumns = []int{1, 2, 13, 14, 15, 16, 17, 18}

// Periods is the number of board rows.
const Periods = 4

// PositionOf returns the board position of n (1..20 only).
func PositionOf(n int) (Position, bool) {
	p, ok := positions[n]
	return p, ok
}

// Column maps a group to its 1-based board column.
func Column(group int) (int, bool) {
	for i, g := range GroupColumns {
		if g == group {
			return i + 1, true
		}
	}
	return 0, false
}

// NumberAt returns the atomic number occupying (period, column).
func NumberAt(period, column int) (int, bool) {
	n, ok := idx.cells[cell{period: period, column: column}]
	return n, ok
}

// HasCell reports whether (period, column) holds an element.
func HasCell(period, column int) bool {
	_, ok := NumberAt(period, column)
	return ok
}
