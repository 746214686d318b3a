package sokoban

// The deadlock detector decides after every move whether the layout is
// provably unsolvable. Exact Sokoban solvability is far too expensive to
// decide per step, so three cheap sound checks are applied instead: a
// per-axis frozen-box test, a dead-end channel capacity test and a
// push-reachability flood fill. None of them ever reports a solvable
// layout as failed.

// axisKey identifies one (cell, axis) pair in the frozen-box recursion.
type axisKey struct {
	pos        Pos
	horizontal bool
}

// boxStuck reports whether the box at (line, col) cannot move along the
// given axis. A box is stuck on an axis when a wall blocks one side, or
// when a neighbouring box is itself stuck on the perpendicular axis. The
// visited set breaks cycles of mutually supporting boxes: re-entering a
// (cell, axis) pair means the cluster holds itself in place, which counts
// as stuck for the cycle-closing call.
func (g *Game) boxStuck(line, col int, horizontal bool, vis map[axisKey]bool) bool {
	current := axisKey{pos: Pos{Line: line, Col: col}, horizontal: horizontal}
	if vis[current] {
		delete(vis, current)
		return true
	}
	vis[current] = true
	stuck := false
	if horizontal {
		if !g.checkFloor(line, col-1) || !g.checkFloor(line, col+1) {
			stuck = true
		} else if g.cells[line][col-1]&isBox != 0 && g.boxStuck(line, col-1, !horizontal, vis) {
			stuck = true
		} else if g.cells[line][col+1]&isBox != 0 && g.boxStuck(line, col+1, !horizontal, vis) {
			stuck = true
		}
	} else {
		if !g.checkFloor(line-1, col) || !g.checkFloor(line+1, col) {
			stuck = true
		} else if g.cells[line-1][col]&isBox != 0 && g.boxStuck(line-1, col, !horizontal, vis) {
			stuck = true
		} else if g.cells[line+1][col]&isBox != 0 && g.boxStuck(line+1, col, !horizontal, vis) {
			stuck = true
		}
	}
	delete(vis, current)
	return stuck
}

// wallStuck checks the dead-end channel rule for a box pinned against a
// wall. side points away from the blocking wall; the scan walks the free
// axis in both directions until the corridor ends. Any floor opening on
// the wall side aborts the check. A fully closed corridor holding more
// boxes than goals can never be emptied.
func (g *Game) wallStuck(line, col int, side Direction) bool {
	boxCount, goalCount := 0, 0
	if g.cells[line][col]&isBox != 0 {
		boxCount++
	}
	if g.cells[line][col]&isGoal != 0 {
		goalCount++
	}
	dl, dc := side.Movement()
	if dl != 0 {
		for p := col - 1; g.checkFloor(line, p); p-- {
			if g.checkFloor(line-dl, p) {
				return false
			}
			if g.cells[line][p]&isBox != 0 {
				boxCount++
			}
			if g.cells[line][p]&isGoal != 0 {
				goalCount++
			}
		}
		for p := col + 1; g.checkFloor(line, p); p++ {
			if g.checkFloor(line-dl, p) {
				return false
			}
			if g.cells[line][p]&isBox != 0 {
				boxCount++
			}
			if g.cells[line][p]&isGoal != 0 {
				goalCount++
			}
		}
	} else {
		for p := line - 1; g.checkFloor(p, col); p-- {
			if g.checkFloor(p, col-dc) {
				return false
			}
			if g.cells[p][col]&isBox != 0 {
				boxCount++
			}
			if g.cells[p][col]&isGoal != 0 {
				goalCount++
			}
		}
		for p := line + 1; g.checkFloor(p, col); p++ {
			if g.checkFloor(p, col-dc) {
				return false
			}
			if g.cells[p][col]&isBox != 0 {
				boxCount++
			}
			if g.cells[p][col]&isGoal != 0 {
				goalCount++
			}
		}
	}
	return boxCount > goalCount
}

// canPushAny flood-fills the cells the player can walk to, stepping past
// boxes only where a push is actually legal, and reports whether any push
// is available anywhere in the reachable region.
func (g *Game) canPushAny(line, col int, vis map[Pos]bool) bool {
	p := Pos{Line: line, Col: col}
	if vis[p] {
		return false
	}
	vis[p] = true
	found := false
	for _, d := range Directions {
		dl, dc := d.Movement()
		if g.checkDirection(d, line, col, false) {
			found = found || g.canPushAny(line+dl, col+dc, vis)
		} else {
			found = found || g.checkDirection(d, line, col, true)
		}
	}
	return found
}

// checkFailed applies the deadlock policy in order: a succeeded game is
// never failed, a player with no legal direction is failed, then every
// box off a goal is tested for axis freezes and dead-end channels, and
// finally the push-reachability sweep runs from the player.
func (g *Game) checkFailed() bool {
	if g.finished == len(g.boxPos) {
		return false
	}
	if g.directions == NoDirection {
		return true
	}
	for _, b := range g.boxPos {
		if g.cells[b.Line][b.Col] == isFloor|isGoal|isBox {
			continue
		}
		stuckVertical := g.boxStuck(b.Line, b.Col, false, make(map[axisKey]bool))
		stuckHorizontal := g.boxStuck(b.Line, b.Col, true, make(map[axisKey]bool))
		if stuckVertical && stuckHorizontal {
			return true
		}
		if stuckVertical {
			if !g.checkFloor(b.Line-1, b.Col) && g.wallStuck(b.Line, b.Col, Down) {
				return true
			}
			if !g.checkFloor(b.Line+1, b.Col) && g.wallStuck(b.Line, b.Col, Up) {
				return true
			}
		}
		if stuckHorizontal {
			if !g.checkFloor(b.Line, b.Col-1) && g.wallStuck(b.Line, b.Col, Right) {
				return true
			}
			if !g.checkFloor(b.Line, b.Col+1) && g.wallStuck(b.Line, b.Col, Left) {
				return true
			}
		}
	}
	return !g.canPushAny(g.playerPos.Line, g.playerPos.Col, make(map[Pos]bool))
}
