package policies

import (
	"golang.org/x/exp/rand"

	"github.com/zeu5/sokoban-ql/rl"
)

// EpsilonGreedyPolicy follows the best known action except for an
// epsilon fraction of uniformly random exploration steps, and learns with
// a temporal-difference update over the supplied reward.
type EpsilonGreedyPolicy struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	reward  rl.RewardFunc
	rand    *rand.Rand
}

var _ rl.Policy = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(alpha, gamma, epsilon float64, reward rl.RewardFunc, seed uint64) *EpsilonGreedyPolicy {
	return &EpsilonGreedyPolicy{
		qTable:  NewQTable(),
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		reward:  reward,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (e *EpsilonGreedyPolicy) Reset() {
	e.qTable = NewQTable()
}

func (e *EpsilonGreedyPolicy) UpdateIteration(int, *rl.Trace) {}

func (e *EpsilonGreedyPolicy) NextAction(step int, state rl.State, actions []rl.Action) (rl.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if e.rand.Float64() < e.epsilon {
		return actions[e.rand.Intn(len(actions))], true
	}

	actionsMap := make(map[string]rl.Action, len(actions))
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := e.qTable.MaxAmong(state.Hash(), availableActions, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (e *EpsilonGreedyPolicy) Update(step int, state rl.State, action rl.Action, nextState rl.State) {
	stateHash := state.Hash()
	nextStateHash := nextState.Hash()
	actionKey := action.Hash()

	curVal := e.qTable.Get(stateHash, actionKey, 0)
	_, max := e.qTable.Max(nextStateHash, 0)
	reward := e.reward(state, action, nextState)
	nextVal := (1-e.alpha)*curVal + e.alpha*(reward+e.gamma*max)
	e.qTable.Set(stateHash, actionKey, nextVal)
}

// Record writes the learned table as JSON to the given path.
func (e *EpsilonGreedyPolicy) Record(path string) error {
	return e.qTable.Record(path)
}
