package sokoban

import (
	"errors"
	"strings"
	"testing"
)

const smallMaze = `
#####
#$.&#
#.*.#
#####
`

func TestParseMaze(t *testing.T) {
	m, err := ParseMaze(smallMaze)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Height() != 4 || m.Width() != 5 {
		t.Errorf("expected 4x5, got %dx%d", m.Height(), m.Width())
	}
	if m.FloorCount() != 6 {
		t.Errorf("expected 6 floor cells, got %d", m.FloorCount())
	}
	if m.FloorBits() != 3 {
		t.Errorf("expected 3 floor bits, got %d", m.FloorBits())
	}
	if m.InitialPlayer() != (Pos{Line: 2, Col: 2}) {
		t.Errorf("wrong player position: %v", m.InitialPlayer())
	}
	boxes := m.InitialBoxes()
	if len(boxes) != 1 || boxes[0] != (Pos{Line: 1, Col: 3}) {
		t.Errorf("wrong boxes: %v", boxes)
	}
	goals := m.Goals()
	if len(goals) != 1 || goals[0] != (Pos{Line: 1, Col: 1}) {
		t.Errorf("wrong goals: %v", goals)
	}
	if !m.IsGoal(Pos{Line: 1, Col: 1}) {
		t.Error("expected goal at (1,1)")
	}
}

func TestParseMazeFloorIndexOrder(t *testing.T) {
	m, err := ParseMaze(smallMaze)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// dense indices follow the scan order
	expected := map[Pos]int{
		{Line: 1, Col: 1}: 0,
		{Line: 1, Col: 2}: 1,
		{Line: 1, Col: 3}: 2,
		{Line: 2, Col: 1}: 3,
		{Line: 2, Col: 2}: 4,
		{Line: 2, Col: 3}: 5,
	}
	for p, want := range expected {
		if got := m.FloorIndexAt(p.Line, p.Col); got != want {
			t.Errorf("floor index at %v: expected %d, got %d", p, want, got)
		}
	}
	if m.FloorIndexAt(0, 0) != -1 {
		t.Error("expected -1 for a wall cell")
	}
	if m.FloorIndexAt(-1, 0) != -1 || m.FloorIndexAt(0, 100) != -1 {
		t.Error("expected -1 out of range")
	}
}

func TestParseMazeErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		kind MazeErrorKind
	}{
		{"no player", "####\n#&$#\n####", ErrNoPlayer},
		{"two players", "######\n#*&$*#\n######", ErrTooManyPlayers},
		{"no box", "####\n#*.#\n####", ErrNoBox},
		{"more boxes than goals", "######\n#*&&$#\n######", ErrTooFewGoals},
		{"too wide", strings.Repeat("#", 126), ErrTooLarge},
		{"too tall", strings.Repeat("#\n", 126), ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMaze(tc.text)
			if err == nil {
				t.Fatal("expected an error")
			}
			var mazeErr *MazeError
			if !errors.As(err, &mazeErr) {
				t.Fatalf("expected a MazeError, got %v", err)
			}
			if mazeErr.Kind != tc.kind {
				t.Errorf("expected kind %v, got %v", tc.kind, mazeErr.Kind)
			}
		})
	}
}

func TestParseMazeStateCapacity(t *testing.T) {
	// 33 floor cells need 6 bits each, 12 fields of 6 bits exceed 64
	over := "*" + strings.Repeat("@", 11) + strings.Repeat(".", 21)
	if _, err := ParseMaze(over); err == nil {
		t.Fatal("expected the encoding capacity to be exceeded")
	} else {
		var mazeErr *MazeError
		if !errors.As(err, &mazeErr) || mazeErr.Kind != ErrTooLarge {
			t.Fatalf("expected ErrTooLarge, got %v", err)
		}
	}

	// 32 floor cells fit in 5 bits, 12 fields of 5 bits fit in 64
	under := "*" + strings.Repeat("@", 11) + strings.Repeat(".", 20)
	m, err := ParseMaze(under)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.FloorBits() != 5 {
		t.Errorf("expected 5 floor bits, got %d", m.FloorBits())
	}
}

func TestParseMazeAliens(t *testing.T) {
	// unknown characters count as walls
	m, err := ParseMaze("?????\n?$.&?\n?.*.?\n?????")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsFloor(0, 0) {
		t.Error("expected unknown characters to be walls")
	}
	if m.FloorCount() != 6 {
		t.Errorf("expected 6 floor cells, got %d", m.FloorCount())
	}
}
