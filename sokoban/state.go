package sokoban

import "fmt"

// StateBits is the fixed width of an encoded state. A maze whose
// FloorBits*(boxes+1) exceeds it is rejected at construction.
const StateBits = 64

// State is the packed bit vector identifying a full game configuration.
// The low FloorBits bits hold the player's floor index, followed by one
// FloorBits-wide field per box in sorted coordinate order.
type State uint64

// Hex renders the state the way the tables and the console do.
func (s State) Hex() string {
	return fmt.Sprintf("0x%x", uint64(s))
}

// Encode packs a player position and a box set into a State. It is a pure
// function of the layout: the boxes are reordered into row-major order
// first, so two equal layouts always encode identically.
func (m *Maze) Encode(player Pos, boxes []Pos) State {
	ordered := make([]Pos, len(boxes))
	copy(ordered, boxes)
	sortBoxes(ordered)
	s := State(m.floorIndex[player.Line][player.Col])
	for i, b := range ordered {
		s |= State(m.floorIndex[b.Line][b.Col]) << uint(m.floorBits*(i+1))
	}
	return s
}

func sortBoxes(boxes []Pos) {
	// insertion sort, box counts are tiny
	for i := 1; i < len(boxes); i++ {
		for j := i; j > 0 && boxes[j].Less(boxes[j-1]); j-- {
			boxes[j], boxes[j-1] = boxes[j-1], boxes[j]
		}
	}
}
