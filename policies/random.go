package policies

import (
	"golang.org/x/exp/rand"

	"github.com/zeu5/sokoban-ql/rl"
)

// RandomPolicy picks uniformly among the available actions and learns
// nothing. It is the baseline every other policy is compared against.
type RandomPolicy struct {
	rand *rand.Rand
}

var _ rl.Policy = &RandomPolicy{}

func NewRandomPolicy(seed uint64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) NextAction(step int, state rl.State, actions []rl.Action) (rl.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	return actions[r.rand.Intn(len(actions))], true
}

func (r *RandomPolicy) Update(int, rl.State, rl.Action, rl.State) {}

func (r *RandomPolicy) UpdateIteration(int, *rl.Trace) {}

func (r *RandomPolicy) Reset() {}
