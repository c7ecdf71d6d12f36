package grid

import "testing"

func TestNameToCoords(t *testing.T) {
	cases := []struct {
		name     string
		row, col int
	}{
		{"A1", 0, 0},
		{"Z1", 0, 25},
		{"AA1", 0, 26},
		{"a12", 11, 0},
		{"AA12", 11, 26},
	}
	for _, c := range cases {
		row, col, ok := NameToCoords(c.name)
		if !ok || row != c.row || col != c.col {
			t.Errorf("NameToCoords(%q) = (%d,%d,%v), want (%d,%d,true)", c.name, row, col, ok, c.row, c.col)
		}
	}
}

func TestNameToCoordsInvalid(t *testing.T) {
	for _, bad := range []string{"", "1A", "A", "1", "A0", "A1B", "A 1", "A-1"} {
		if _, _, ok := NameToCoords(bad); ok {
			t.Errorf("NameToCoords(%q) unexpectedly valid", bad)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for row := 0; row < 5; row++ {
		for col := 0; col < 60; col++ {
			name := CoordsToName(row, col)
			gotRow, gotCol, ok := NameToCoords(name)
			if !ok || gotRow != row || gotCol != col {
				t.Fatalf("round trip failed for (%d,%d): name=%q got (%d,%d,%v)", row, col, name, gotRow, gotCol, ok)
			}
		}
	}
}

func TestCoordsToNameKnownValues(t *testing.T) {
	cases := map[string][2]int{
		"A1":   {0, 0},
		"Z1":   {0, 25},
		"AA1":  {0, 26},
		"AA12": {11, 26},
	}
	for name, rc := range cases {
		if got := CoordsToName(rc[0], rc[1]); got != name {
			t.Errorf("CoordsToName(%d,%d) = %q, want %q", rc[0], rc[1], got, name)
		}
	}
}
