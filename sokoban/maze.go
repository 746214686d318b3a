package sokoban

import (
	"fmt"
	"sort"
)

// maxDimension caps the board size so a floor index always fits the
// fixed-width encoded state.
const maxDimension = 125

// Pos is a board coordinate, line first.
type Pos struct {
	Line int
	Col  int
}

// Less orders positions in row-major scan order.
func (p Pos) Less(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// MazeErrorKind identifies the configuration error detected while
// constructing a maze.
type MazeErrorKind int

const (
	ErrTooLarge MazeErrorKind = iota
	ErrTooManyPlayers
	ErrNoPlayer
	ErrNoBox
	ErrTooFewGoals
)

func (k MazeErrorKind) String() string {
	switch k {
	case ErrTooLarge:
		return "maze too large"
	case ErrTooManyPlayers:
		return "too many players"
	case ErrNoPlayer:
		return "no player"
	case ErrNoBox:
		return "no box"
	case ErrTooFewGoals:
		return "too few goals"
	}
	return "unknown maze error"
}

// MazeError is returned for any malformed maze text. Construction is all
// or nothing, a caller never observes a partially built maze.
type MazeError struct {
	Kind MazeErrorKind
}

func (e *MazeError) Error() string {
	return fmt.Sprintf("invalid maze: %s", e.Kind)
}

// Maze holds the immutable board geometry parsed from maze text: the
// wall/floor layout, the dense floor indexing used by the state codec and
// the initial player/box/goal placement.
type Maze struct {
	height     int
	width      int
	floorBits  int
	floorCount int
	floorIndex [][]int
	goals      map[Pos]bool
	player0    Pos
	boxes0     []Pos
}

// ParseMaze converts raw maze text into board geometry.
//
// Rows are separated by newlines, leading and trailing blank lines are
// stripped, carriage returns are ignored. Cell alphabet: '#' wall,
// '.' floor, '$' goal, '&' box, '@' box on goal, '*' player, '+' player
// on goal. Any other character is treated as wall.
func ParseMaze(text string) (*Maze, error) {
	for len(text) > 0 && text[0] == '\n' {
		text = text[1:]
	}
	for len(text) > 0 && text[len(text)-1] == '\n' {
		text = text[:len(text)-1]
	}

	floor := make([]Pos, 0)
	goals := make(map[Pos]bool)
	boxes := make([]Pos, 0)
	player := Pos{Line: -1, Col: -1}
	playerSeen := false

	line, col := 0, -1
	height, width := 1, 0
	for _, c := range text {
		switch c {
		case '\r':
		case '\n':
			line++
			col = -1
			if line >= maxDimension {
				return nil, &MazeError{Kind: ErrTooLarge}
			}
			if line >= height {
				height = line + 1
			}
		default:
			col++
			if col >= maxDimension {
				return nil, &MazeError{Kind: ErrTooLarge}
			}
			if col >= width {
				width = col + 1
			}
			p := Pos{Line: line, Col: col}
			switch c {
			case '.':
				floor = append(floor, p)
			case '*':
				floor = append(floor, p)
				if playerSeen {
					return nil, &MazeError{Kind: ErrTooManyPlayers}
				}
				player = p
				playerSeen = true
			case '$':
				floor = append(floor, p)
				goals[p] = true
			case '&':
				floor = append(floor, p)
				boxes = append(boxes, p)
			case '+':
				floor = append(floor, p)
				if playerSeen {
					return nil, &MazeError{Kind: ErrTooManyPlayers}
				}
				player = p
				playerSeen = true
				goals[p] = true
			case '@':
				floor = append(floor, p)
				boxes = append(boxes, p)
				goals[p] = true
			}
		}
	}

	if !playerSeen {
		return nil, &MazeError{Kind: ErrNoPlayer}
	}
	if len(boxes) == 0 {
		return nil, &MazeError{Kind: ErrNoBox}
	}
	if len(boxes) > len(goals) {
		return nil, &MazeError{Kind: ErrTooFewGoals}
	}

	floorBits := 0
	for remain := len(floor) - 1; remain > 0; remain >>= 1 {
		floorBits++
	}
	if floorBits*(len(boxes)+1) > StateBits {
		return nil, &MazeError{Kind: ErrTooLarge}
	}

	floorIndex := make([][]int, height)
	for i := range floorIndex {
		floorIndex[i] = make([]int, width)
		for j := range floorIndex[i] {
			floorIndex[i][j] = -1
		}
	}
	for i, p := range floor {
		floorIndex[p.Line][p.Col] = i
	}

	sort.Slice(boxes, func(i, j int) bool { return boxes[i].Less(boxes[j]) })

	return &Maze{
		height:     height,
		width:      width,
		floorBits:  floorBits,
		floorCount: len(floor),
		floorIndex: floorIndex,
		goals:      goals,
		player0:    player,
		boxes0:     boxes,
	}, nil
}

func (m *Maze) Height() int { return m.height }

func (m *Maze) Width() int { return m.width }

// FloorBits is the number of bits needed for one floor index.
func (m *Maze) FloorBits() int { return m.floorBits }

// FloorCount is the number of floor cells, including the cells the player
// and the boxes start on.
func (m *Maze) FloorCount() int { return m.floorCount }

// IsFloor reports whether the cell is walkable. Out of range counts as wall.
func (m *Maze) IsFloor(line, col int) bool {
	if line < 0 || line >= m.height {
		return false
	}
	if col < 0 || col >= m.width {
		return false
	}
	return m.floorIndex[line][col] >= 0
}

// FloorIndexAt returns the dense row-major floor index, -1 for walls.
func (m *Maze) FloorIndexAt(line, col int) int {
	if !m.IsFloor(line, col) {
		return -1
	}
	return m.floorIndex[line][col]
}

// IsGoal reports whether the cell is a goal cell.
func (m *Maze) IsGoal(p Pos) bool { return m.goals[p] }

// Goals returns the goal cells in row-major order.
func (m *Maze) Goals() []Pos {
	out := make([]Pos, 0, len(m.goals))
	for p := range m.goals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// InitialPlayer returns the player's starting cell.
func (m *Maze) InitialPlayer() Pos { return m.player0 }

// InitialBoxes returns the boxes' starting cells in row-major order.
func (m *Maze) InitialBoxes() []Pos {
	out := make([]Pos, len(m.boxes0))
	copy(out, m.boxes0)
	return out
}

// BoxCount is the total number of boxes on the board.
func (m *Maze) BoxCount() int { return len(m.boxes0) }
