package elements

import (
	"errors"
	"fmt"
)

// MaxNumber is the highest atomic number in the reference table.
const MaxNumber = 118

// GameplayMax is the highest atomic number that appears as a question.
const GameplayMax = 20

// ErrOutOfRange is returned for atomic numbers outside 1..MaxNumber.
var ErrOutOfRange = errors.New("atomic number out of range")

// Element is a single (atomic number, symbol) pair.
type Element struct {
	Number int
	Symbol string
}

// index holds lookup tables built once from the seed data.
type index struct {
	bySymbol map[string]Element
	symbols  []string
	cells    map[cell]int
}

type cell struct {
	period int
	column int
}

var idx *index

func init() {
	if err := validateTable(table, positions); err != nil {
		panic(err)
	}
	idx = buildIndex(table, positions)
}

func buildIndex(elems []Element, pos map[int]Position) *index {
	ix := &index{
		bySymbol: make(map[string]Element, len(elems)),
		symbols:  make([]string, 0, len(elems)),
		cells:    make(map[cell]int, len(pos)),
	}
	for _, e := range elems {
		ix.bySymbol[e.Symbol] = e
		ix.symbols = append(ix.symbols, e.Symbol)
	}
	for n, p := range pos {
		col, ok := Column(p.Group)
		if !ok {
			continue
		}
		ix.cells[cell{period: p.Period, column: col}] = n
	}
	return ix
}

// ByNumber returns the element with atomic number n.
func ByNumber(n int) (Element, error) {
	if n < 1 || n > len(table) {
		return Element{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return table[n-1], nil
}

// MustByNumber is ByNumber for callers that already hold a valid number.
func MustByNumber(n int) Element {
	e, err := ByNumber(n)
	if err != nil {
		panic(err)
	}
	return e
}

// BySymbol looks up an element by its exact (case-sensitive) symbol.
func BySymbol(s string) (Element, bool) {
	e, ok := idx.bySymbol[s]
	return e, ok
}

// SymbolFor returns the symbol for n, or "" when n is out of range.
func SymbolFor(n int) string {
	e, err := ByNumber(n)
	if err != nil {
		return ""
	}
	return e.Symbol
}

// Symbols returns all 118 symbols in atomic-number order.
func Symbols() []string {
	out := make([]string, len(idx.symbols))
	copy(out, idx.symbols)
	return out
}

// NameFor returns the Japanese name for 1..20 and a placeholder label otherwise.
func NameFor(n int) string {
	if name, ok := namesJA[n]; ok {
		return name
	}
	return fmt.Sprintf("元素（%d）", n)
}

// GameplayNumbers returns 1..GameplayMax in order.
func GameplayNumbers() []int {
	out := make([]int, GameplayMax)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
