package replio

import (
	"testing"

	"sheet/engine"
	"sheet/viewport"
)

func TestDispatchAssignment(t *testing.T) {
	s := engine.NewSheet(5, 5)
	v := viewport.View{}
	enabled := true
	if status := dispatch(s, &v, 5, 5, &enabled, "A1=10"); status != "ok" {
		t.Fatalf("got %q", status)
	}
	if val, _, _ := s.Cell(0, 0); val != 10 {
		t.Errorf("A1 = %d, want 10", val)
	}
}

func TestDispatchScroll(t *testing.T) {
	s := engine.NewSheet(50, 50)
	v := viewport.View{}
	enabled := true
	dispatch(s, &v, 50, 50, &enabled, "s")
	if v.TopRow != viewport.Size {
		t.Errorf("TopRow = %d, want %d", v.TopRow, viewport.Size)
	}
}

func TestDispatchScrollTo(t *testing.T) {
	s := engine.NewSheet(50, 50)
	v := viewport.View{}
	enabled := true
	if status := dispatch(s, &v, 50, 50, &enabled, "scroll_to B2"); status != "ok" {
		t.Fatalf("got %q", status)
	}
	if v.TopRow != 1 || v.LeftCol != 1 {
		t.Errorf("got (%d,%d), want (1,1)", v.TopRow, v.LeftCol)
	}
}

func TestDispatchScrollToOutOfBounds(t *testing.T) {
	s := engine.NewSheet(2, 2)
	v := viewport.View{}
	enabled := true
	if status := dispatch(s, &v, 2, 2, &enabled, "scroll_to Z99"); status != "Cell reference out of bounds" {
		t.Fatalf("got %q", status)
	}
}

func TestDispatchOutputToggle(t *testing.T) {
	s := engine.NewSheet(2, 2)
	v := viewport.View{}
	enabled := true
	dispatch(s, &v, 2, 2, &enabled, "disable_output")
	if enabled {
		t.Errorf("expected output disabled")
	}
	dispatch(s, &v, 2, 2, &enabled, "enable_output")
	if !enabled {
		t.Errorf("expected output enabled")
	}
}

func TestDispatchUnrecognized(t *testing.T) {
	s := engine.NewSheet(2, 2)
	v := viewport.View{}
	enabled := true
	if status := dispatch(s, &v, 2, 2, &enabled, "frobnicate"); status != "unrecognized cmd" {
		t.Fatalf("got %q", status)
	}
}
