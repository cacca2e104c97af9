package elements

import (
	"errors"
	"testing"
)

func TestByNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "H"},
		{6, "C"},
		{20, "Ca"},
		{79, "Au"},
		{118, "Og"},
	}
	for _, tt := range tests {
		e, err := ByNumber(tt.n)
		if err != nil {
			t.Fatalf("ByNumber(%d): unexpected error: %v", tt.n, err)
		}
		if e.Symbol != tt.want {
			t.Errorf("ByNumber(%d) = %q, want %q", tt.n, e.Symbol, tt.want)
		}
	}
}

func TestByNumber_OutOfRange(t *testing.T) {
	for _, n := range []int{0, -3, 119} {
		if _, err := ByNumber(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ByNumber(%d) error = %v, want ErrOutOfRange", n, err)
		}
	}
}

func TestBySymbol(t *testing.T) {
	e, ok := BySymbol("Cl")
	if !ok || e.Number != 17 {
		t.Errorf("BySymbol(Cl) = %+v, %v; want 17, true", e, ok)
	}
	if _, ok := BySymbol("cl"); ok {
		t.Error("expected case-sensitive lookup to miss for \"cl\"")
	}
	if _, ok := BySymbol("Xx"); ok {
		t.Error("expected lookup miss for unknown symbol")
	}
}

func TestNameFor(t *testing.T) {
	if got := NameFor(6); got != "炭素" {
		t.Errorf("NameFor(6) = %q, want 炭素", got)
	}
	if got := NameFor(20); got != "カルシウム" {
		t.Errorf("NameFor(20) = %q, want カルシウム", got)
	}
	if got := NameFor(21); got != "元素（21）" {
		t.Errorf("NameFor(21) = %q, want placeholder", got)
	}
}

func TestSymbols_ReturnsCopy(t *testing.T) {
	s := Symbols()
	if len(s) != MaxNumber {
		t.Fatalf("len(Symbols()) = %d, want %d", len(s), MaxNumber)
	}
	s[0] = "Zz"
	if Symbols()[0] != "H" {
		t.Error("mutating the returned slice changed the table")
	}
}

func TestBoard_NoCollisions(t *testing.T) {
	seen := make(map[Position]int)
	for n := 1; n <= GameplayMax; n++ {
		p, ok := PositionOf(n)
		if !ok {
			t.Fatalf("element %d has no position", n)
		}
		if other, dup := seen[p]; dup {
			t.Errorf("elements %d and %d share %+v", other, n, p)
		}
		seen[p] = n
	}
	if _, ok := PositionOf(21); ok {
		t.Error("expected no board position for 21")
	}
}

func TestNumberAt(t *testing.T) {
	tests := []struct {
		period, column int
		want           int
	}{
		{1, 1, 1},
		{1, 8, 2},
		{2, 1, 3},
		{3, 7, 17},
		{4, 2, 20},
	}
	for _, tt := range tests {
		got, ok := NumberAt(tt.period, tt.column)
		if !ok || got != tt.want {
			t.Errorf("NumberAt(%d, %d) = %d, %v; want %d", tt.period, tt.column, got, ok, tt.want)
		}
	}
	if HasCell(1, 2) {
		t.Error("expected (1, 2) to be empty")
	}
	if HasCell(4, 3) {
		t.Error("expected (4, 3) to be empty")
	}
}
