package formula

import (
	"testing"

	"sheet/parser"
)

func TestDependenciesPureNumberIsEmpty(t *testing.T) {
	expr, _ := parser.Parse("-42")
	if deps := Dependencies(expr); len(deps) != 0 {
		t.Fatalf("expected no dependencies, got %v", deps)
	}
}

func TestDependenciesSingleRef(t *testing.T) {
	expr, _ := parser.Parse("A1+1")
	deps := Dependencies(expr)
	if len(deps) != 1 || deps[0] != (RowCol{0, 0}) {
		t.Fatalf("expected [A1], got %v", deps)
	}
}

func TestDependenciesRangeNormalisesReversedCorners(t *testing.T) {
	expr, _ := parser.Parse("SUM(B2:A1)")
	deps := Dependencies(expr)
	want := map[RowCol]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}
	if len(deps) != 4 {
		t.Fatalf("expected 4 cells, got %v", deps)
	}
	for _, d := range deps {
		if !want[d] {
			t.Errorf("unexpected cell in expansion: %v", d)
		}
	}
}

func TestDependenciesSleepArgWalked(t *testing.T) {
	expr, _ := parser.Parse("SLEEP(A1)")
	deps := Dependencies(expr)
	if len(deps) != 1 || deps[0] != (RowCol{0, 0}) {
		t.Fatalf("expected [A1], got %v", deps)
	}
}
