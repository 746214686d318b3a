package qlearning

import (
	"sort"

	"github.com/zeu5/sokoban-ql/sokoban"
)

// Row holds the four action values of one state, ordered Up, Left,
// Right, Down.
type Row [4]float64

// Slot maps a single direction to its row index, -1 for anything else.
func Slot(d sokoban.Direction) int {
	switch d {
	case sokoban.Up:
		return 0
	case sokoban.Left:
		return 1
	case sokoban.Right:
		return 2
	case sokoban.Down:
		return 3
	}
	return -1
}

// SlotDirection is the inverse of Slot.
func SlotDirection(i int) sokoban.Direction {
	if i < 0 || i >= len(sokoban.Directions) {
		return sokoban.NoDirection
	}
	return sokoban.Directions[i]
}

// Table is the narrow surface the selector and the trainer need. Unseen
// states read as zero and are materialized on first write.
type Table interface {
	Get(state sokoban.State, action sokoban.Direction) float64
	Set(state sokoban.State, action sokoban.Direction, value float64)
	Has(state sokoban.State) bool
}

// MapTable is the sparse map-backed Table. Rows are created lazily and
// never deleted.
type MapTable struct {
	rows map[sokoban.State]*Row
}

var _ Table = &MapTable{}

func NewMapTable() *MapTable {
	return &MapTable{
		rows: make(map[sokoban.State]*Row),
	}
}

func (t *MapTable) Get(state sokoban.State, action sokoban.Direction) float64 {
	row, ok := t.rows[state]
	if !ok {
		return 0
	}
	slot := Slot(action)
	if slot < 0 {
		return 0
	}
	return row[slot]
}

func (t *MapTable) Set(state sokoban.State, action sokoban.Direction, value float64) {
	slot := Slot(action)
	if slot < 0 {
		return
	}
	row, ok := t.rows[state]
	if !ok {
		row = &Row{}
		t.rows[state] = row
	}
	row[slot] = value
}

func (t *MapTable) Has(state sokoban.State) bool {
	_, ok := t.rows[state]
	return ok
}

// Row returns a copy of the state's full row, all zeros when unseen.
func (t *MapTable) Row(state sokoban.State) Row {
	if row, ok := t.rows[state]; ok {
		return *row
	}
	return Row{}
}

// Len is the number of materialized states.
func (t *MapTable) Len() int {
	return len(t.rows)
}

// States lists the materialized states in increasing order, for printing.
func (t *MapTable) States() []sokoban.State {
	out := make([]sokoban.State, 0, len(t.rows))
	for s := range t.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
