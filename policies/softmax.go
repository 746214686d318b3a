package policies

import (
	"math"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/sokoban-ql/rl"
)

// SoftMaxPolicy samples actions with probabilities proportional to the
// exponential of their values and updates the table with a standard
// temporal-difference rule over the supplied reward.
type SoftMaxPolicy struct {
	qTable *QTable
	alpha  float64
	gamma  float64
	reward rl.RewardFunc
}

var _ rl.Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(alpha, gamma float64, reward rl.RewardFunc) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		qTable: NewQTable(),
		alpha:  alpha,
		gamma:  gamma,
		reward: reward,
	}
}

func (s *SoftMaxPolicy) Reset() {
	s.qTable = NewQTable()
}

func (s *SoftMaxPolicy) UpdateIteration(int, *rl.Trace) {}

func (s *SoftMaxPolicy) NextAction(step int, state rl.State, actions []rl.Action) (rl.Action, bool) {
	stateHash := state.Hash()

	sum := float64(0)
	weights := make([]float64, len(actions))
	vals := make([]float64, len(actions))
	for i, action := range actions {
		val := s.qTable.Get(stateHash, action.Hash(), 0)
		exp := math.Exp(val)
		vals[i] = exp
		sum += exp
	}
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

func (s *SoftMaxPolicy) Update(step int, state rl.State, action rl.Action, nextState rl.State) {
	stateHash := state.Hash()
	nextStateHash := nextState.Hash()
	actionKey := action.Hash()

	curVal := s.qTable.Get(stateHash, actionKey, 0)
	_, max := s.qTable.Max(nextStateHash, 0)
	reward := s.reward(state, action, nextState)
	nextVal := (1-s.alpha)*curVal + s.alpha*(reward+s.gamma*max)
	s.qTable.Set(stateHash, actionKey, nextVal)
}
