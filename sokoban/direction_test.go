package sokoban

import "testing"

func TestDirectionMask(t *testing.T) {
	mask := Up | Right
	if !mask.Has(Up) || !mask.Has(Right) {
		t.Error("mask must contain its members")
	}
	if mask.Has(Left) || mask.Has(Down) {
		t.Error("mask must not contain other directions")
	}
	if mask.Has(NoDirection) {
		t.Error("the sentinel is never contained")
	}
	if mask.Count() != 2 {
		t.Errorf("expected count 2, got %d", mask.Count())
	}
	list := mask.List()
	if len(list) != 2 || list[0] != Up || list[1] != Right {
		t.Errorf("expected [Up Right], got %v", list)
	}
}

func TestDirectionMovement(t *testing.T) {
	cases := []struct {
		d         Direction
		line, col int
	}{
		{Up, -1, 0},
		{Left, 0, -1},
		{Right, 0, 1},
		{Down, 1, 0},
		{NoDirection, 0, 0},
		{Up | Down, 0, 0},
	}
	for _, tc := range cases {
		dl, dc := tc.d.Movement()
		if dl != tc.line || dc != tc.col {
			t.Errorf("%s: expected (%d,%d), got (%d,%d)", tc.d, tc.line, tc.col, dl, dc)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if NoDirection.String() != "None" {
		t.Errorf("wrong sentinel name: %s", NoDirection)
	}
	if (Up | Down).String() != "Up|Down" {
		t.Errorf("wrong mask name: %s", Up|Down)
	}
	for _, d := range Directions {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("%s does not round trip", d)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("unknown names must not parse")
	}
}
