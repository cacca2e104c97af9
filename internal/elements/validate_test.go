package elements

import (
	"strings"
	"testing"
)

func TestValidateTable_Seed(t *testing.T) {
	if err := validateTable(table, positions); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestValidateTable_DuplicateSymbol(t *testing.T) {
	elems := make([]Element, len(table))
	copy(elems, table)
	elems[1].Symbol = "H"

	err := validateTable(elems, positions)
	if err == nil || !strings.Contains(err.Error(), `symbol "H"`) {
		t.Fatalf("expected duplicate symbol error, got %v", err)
	}
}

func TestValidateTable_SharedCell(t *testing.T) {
	pos := make(map[int]Position, len(positions))
	for k, v := range positions {
		pos[k] = v
	}
	pos[2] = Position{Period: 1, Group: 1}

	err := validateTable(table, pos)
	if err == nil || !strings.Contains(err.Error(), "share") {
		t.Fatalf("expected shared cell error, got %v", err)
	}
}

func TestValidateTable_TransitionGroup(t *testing.T) {
	pos := make(map[int]Position, len(positions))
	for k, v := range positions {
		pos[k] = v
	}
	pos[20] = Position{Period: 4, Group: 3}

	err := validateTable(table, pos)
	if err == nil || !strings.Contains(err.Error(), "group 3") {
		t.Fatalf("expected off-board group error, got %v", err)
	}
}
