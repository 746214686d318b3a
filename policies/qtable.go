package policies

import (
	"encoding/json"
	"math"

	"github.com/zeu5/sokoban-ql/util"
)

// QTable is the string-keyed sparse table the generic policies learn
// into. States and actions are addressed by their hashes.
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// GetAll returns the full action/value row of a state.
func (q *QTable) GetAll(state string) (map[string]float64, bool) {
	row, ok := q.table[state]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(row))
	for a, v := range row {
		out[a] = v
	}
	return out, true
}

// Max returns the best action and value of a state, def when the state
// holds no values yet.
func (q *QTable) Max(state string, def float64) (string, float64) {
	row, ok := q.table[state]
	if !ok || len(row) == 0 {
		return "", def
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for a, val := range row {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// MaxAmong returns the best of the given actions, materializing missing
// entries with def.
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		val := q.Get(state, a, def)
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// Record writes the table as JSON to the given path.
func (q *QTable) Record(path string) error {
	bs, err := json.Marshal(q.table)
	if err != nil {
		return err
	}
	return util.WriteToFile(path, string(bs))
}
