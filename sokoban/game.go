package sokoban

import "strings"

type cellFlag uint8

const (
	isWall   cellFlag = 0b0000
	isFloor  cellFlag = 0b0001
	isGoal   cellFlag = 0b0010
	isBox    cellFlag = 0b0100
	isPlayer cellFlag = 0b1000
)

// Game owns the mutable progress of one puzzle: the player and box
// positions, the elapsed step counter and the per-episode history of
// encoded states. All derived fields (legal directions, finished boxes,
// succeeded/failed flags, encoded state) are recomputed after every
// mutation so readers always observe a consistent snapshot.
type Game struct {
	maze *Maze

	succeeded   bool
	failed      bool
	directions  Direction
	finished    int
	state       State
	timeElapsed uint64

	playerPos Pos
	boxPos    []Pos // kept in row-major order
	cells     [][]cellFlag
	history   map[State]bool
}

// NewGame parses the maze text and returns a game at its initial layout.
func NewGame(mazeText string) (*Game, error) {
	maze, err := ParseMaze(mazeText)
	if err != nil {
		return nil, err
	}
	return NewGameFromMaze(maze), nil
}

// NewGameFromMaze starts a game on an already parsed maze. The maze is
// shared, never mutated.
func NewGameFromMaze(maze *Maze) *Game {
	g := &Game{
		maze:  maze,
		cells: make([][]cellFlag, maze.height),
	}
	for i := range g.cells {
		g.cells[i] = make([]cellFlag, maze.width)
	}
	g.Restart()
	return g
}

// Restart resets the player and boxes to the initial layout, clears the
// visited-state history and the elapsed counter. The resulting state is
// bit-identical to the one right after construction.
func (g *Game) Restart() {
	g.timeElapsed = 0
	g.history = make(map[State]bool)
	g.playerPos = g.maze.player0
	g.boxPos = g.maze.InitialBoxes()
	g.updateData()
}

// Move translates the player one cell in the given direction, pushing a
// single box if one occupies the destination. Illegal directions, the
// NoDirection sentinel and multi-bit masks are no-ops. Returns whether a
// box was pushed.
func (g *Game) Move(direction Direction) bool {
	if g.directions&direction == 0 {
		return false
	}
	dl, dc := direction.Movement()
	if dl == 0 && dc == 0 {
		return false
	}
	g.timeElapsed++
	g.history[g.state] = true
	g.playerPos = Pos{Line: g.playerPos.Line + dl, Col: g.playerPos.Col + dc}
	pushed := false
	for i, b := range g.boxPos {
		if b == g.playerPos {
			g.boxPos[i] = Pos{Line: b.Line + dl, Col: b.Col + dc}
			pushed = true
			break
		}
	}
	g.updateData()
	return pushed
}

// updateData recomputes every derived field from the player and box
// positions: the occupancy grid, the finished-box count, the encoded
// state, the legal-direction mask and the terminal flags.
func (g *Game) updateData() {
	sortBoxes(g.boxPos)
	for i := 0; i < g.maze.height; i++ {
		for j := 0; j < g.maze.width; j++ {
			if g.maze.floorIndex[i][j] >= 0 {
				g.cells[i][j] = isFloor
			} else {
				g.cells[i][j] = isWall
			}
		}
	}
	for p := range g.maze.goals {
		g.cells[p.Line][p.Col] |= isGoal
	}
	g.finished = 0
	for _, b := range g.boxPos {
		g.cells[b.Line][b.Col] |= isBox
		if g.cells[b.Line][b.Col] == isFloor|isGoal|isBox {
			g.finished++
		}
	}
	g.cells[g.playerPos.Line][g.playerPos.Col] |= isPlayer

	g.state = g.maze.Encode(g.playerPos, g.boxPos)

	g.directions = NoDirection
	for _, d := range Directions {
		if g.checkDirection(d, g.playerPos.Line, g.playerPos.Col, true) {
			g.directions |= d
		}
	}
	g.succeeded = g.finished == len(g.boxPos)
	g.failed = g.checkFailed()
}

func (g *Game) checkFloor(line, col int) bool {
	return g.maze.IsFloor(line, col)
}

// checkDirection reports whether the cell at (line, col) can leave in the
// given direction. With canPush set, a box in the destination is allowed
// as long as the cell beyond it is free floor; chains of two boxes never
// move.
func (g *Game) checkDirection(direction Direction, line, col int, canPush bool) bool {
	dl, dc := direction.Movement()
	if !g.checkFloor(line+dl, col+dc) {
		return false
	}
	if g.cells[line+dl][col+dc]&isBox != 0 {
		if !canPush {
			return false
		}
		return g.checkDirection(direction, line+dl, col+dc, false)
	}
	return true
}

// Succeeded reports whether every box sits on a goal.
func (g *Game) Succeeded() bool { return g.succeeded }

// Failed reports whether the deadlock detector proved the episode lost.
// It stays true until Restart.
func (g *Game) Failed() bool { return g.failed }

// Directions is the bitmask of currently legal moves.
func (g *Game) Directions() Direction { return g.directions }

// Finished is the number of boxes currently on goals.
func (g *Game) Finished() int { return g.finished }

// EncodedState is the packed identity of the current layout.
func (g *Game) EncodedState() State { return g.state }

// TimeElapsed is the number of moves applied since the last restart.
func (g *Game) TimeElapsed() uint64 { return g.timeElapsed }

// SeenState reports whether the encoded state was already visited during
// the current episode. The history covers the whole episode and is only
// cleared on restart.
func (g *Game) SeenState(s State) bool { return g.history[s] }

// PlayerPos is the player's current cell.
func (g *Game) PlayerPos() Pos { return g.playerPos }

// BoxPositions returns the boxes' current cells in row-major order.
func (g *Game) BoxPositions() []Pos {
	out := make([]Pos, len(g.boxPos))
	copy(out, g.boxPos)
	return out
}

// BoxCount is the total number of boxes.
func (g *Game) BoxCount() int { return len(g.boxPos) }

// Maze exposes the immutable board the game runs on.
func (g *Game) Maze() *Maze { return g.maze }

// Render draws the current board with the same alphabet the parser reads.
func (g *Game) Render() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			switch c {
			case isWall:
				b.WriteByte('#')
			case isFloor:
				b.WriteByte('.')
			case isFloor | isGoal:
				b.WriteByte('$')
			case isFloor | isBox:
				b.WriteByte('&')
			case isFloor | isGoal | isBox:
				b.WriteByte('@')
			case isFloor | isPlayer:
				b.WriteByte('*')
			case isFloor | isGoal | isPlayer:
				b.WriteByte('+')
			}
		}
	}
	return b.String()
}
