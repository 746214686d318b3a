package qlearning

import (
	"math/rand"

	"github.com/zeu5/sokoban-ql/sokoban"
)

// FindAction picks the next move with an epsilon-greedy rule over the
// currently legal directions.
//
// A single legal direction is returned unconditionally. Otherwise the
// action is uniform random among the legal directions when all their
// stored values are equal or the exploration draw lands below epsilon,
// and the strictly greatest stored value wins the rest of the time, ties
// broken by the fixed Up, Left, Right, Down order.
func FindAction(rng *rand.Rand, epsilon float64, game *sokoban.Game, table Table) sokoban.Direction {
	actions := game.Directions()
	if actions == sokoban.NoDirection {
		return sokoban.NoDirection
	}
	legal := actions.List()
	if len(legal) == 1 {
		return legal[0]
	}

	state := game.EncodedState()
	first := table.Get(state, legal[0])
	choice := legal[0]
	maxQ := first
	allSame := true
	for _, d := range legal[1:] {
		q := table.Get(state, d)
		if q != first {
			allSame = false
		}
		if q > maxQ {
			maxQ = q
			choice = d
		}
	}

	if allSame || rng.Float64() < epsilon {
		return legal[rng.Intn(len(legal))]
	}
	return choice
}
