package sokoban

// Direction is a bitmask over the four cardinal moves so that sets of
// simultaneously legal directions combine with bitwise operations.
type Direction uint8

const (
	NoDirection Direction = 0b0000
	Up          Direction = 0b0001
	Left        Direction = 0b0010
	Right       Direction = 0b0100
	Down        Direction = 0b1000
)

// Directions in the fixed enumeration order used everywhere a tie has to
// be broken deterministically.
var Directions = [4]Direction{Up, Left, Right, Down}

// Movement returns the unit (line, col) delta of a single direction.
// NoDirection and multi-bit masks map to (0, 0).
func (d Direction) Movement() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	}
	return 0, 0
}

// Has reports whether every direction in o is present in the mask.
func (d Direction) Has(o Direction) bool {
	return o != NoDirection && d&o == o
}

// List expands the mask into single directions in enumeration order.
func (d Direction) List() []Direction {
	out := make([]Direction, 0, 4)
	for _, single := range Directions {
		if d&single != 0 {
			out = append(out, single)
		}
	}
	return out
}

// Count returns the number of single directions in the mask.
func (d Direction) Count() int {
	count := 0
	for _, single := range Directions {
		if d&single != 0 {
			count++
		}
	}
	return count
}

func (d Direction) String() string {
	switch d {
	case NoDirection:
		return "None"
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	}
	s := ""
	for _, single := range d.List() {
		if s != "" {
			s += "|"
		}
		s += single.String()
	}
	return s
}

// ParseDirection maps a direction name back to its mask value.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "Up", "up":
		return Up, true
	case "Left", "left":
		return Left, true
	case "Right", "right":
		return Right, true
	case "Down", "down":
		return Down, true
	}
	return NoDirection, false
}
