package policies

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeu5/sokoban-ql/rl"
)

type namedAction string

func (a namedAction) Hash() string { return string(a) }

type namedState string

func (s namedState) Hash() string { return string(s) }

func (s namedState) Actions() []rl.Action { return nil }

func constantReward(r float64) rl.RewardFunc {
	return func(rl.State, rl.Action, rl.State) float64 { return r }
}

func TestRandomPolicy(t *testing.T) {
	p := NewRandomPolicy(1)

	_, ok := p.NextAction(0, namedState("s"), nil)
	require.False(t, ok)

	actions := []rl.Action{namedAction("a"), namedAction("b"), namedAction("c")}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		a, ok := p.NextAction(i, namedState("s"), actions)
		require.True(t, ok)
		seen[a.Hash()] = true
	}
	require.Len(t, seen, 3)
}

func TestEpsilonGreedyPicksBest(t *testing.T) {
	p := NewEpsilonGreedyPolicy(0.5, 1, 0, constantReward(0), 1)
	p.qTable.Set("s", "a", 1)
	p.qTable.Set("s", "b", 5)

	actions := []rl.Action{namedAction("a"), namedAction("b")}
	for i := 0; i < 20; i++ {
		a, ok := p.NextAction(i, namedState("s"), actions)
		require.True(t, ok)
		require.Equal(t, "b", a.Hash())
	}

	_, ok := p.NextAction(0, namedState("s"), nil)
	require.False(t, ok)
}

func TestEpsilonGreedyUpdate(t *testing.T) {
	// alpha 1 and gamma 0 store the raw reward
	p := NewEpsilonGreedyPolicy(1, 0, 0, constantReward(7), 1)
	p.Update(0, namedState("s"), namedAction("a"), namedState("t"))
	require.Equal(t, 7.0, p.qTable.Get("s", "a", 0))

	// a discounted update folds in the next state's best value
	p = NewEpsilonGreedyPolicy(1, 0.5, 0, constantReward(7), 1)
	p.qTable.Set("t", "x", 4)
	p.Update(0, namedState("s"), namedAction("a"), namedState("t"))
	require.Equal(t, 9.0, p.qTable.Get("s", "a", 0))
}

func TestEpsilonGreedyReset(t *testing.T) {
	p := NewEpsilonGreedyPolicy(0.5, 1, 0, constantReward(0), 1)
	p.qTable.Set("s", "a", 1)
	p.Reset()
	require.False(t, p.qTable.HasState("s"))
}

func TestSoftMaxPolicy(t *testing.T) {
	p := NewSoftMaxPolicy(0.5, 1, constantReward(0))
	actions := []rl.Action{namedAction("a"), namedAction("b")}

	// heavily skew the table, the sampler should follow the weights
	p.qTable.Set("s", "a", 20)
	p.qTable.Set("s", "b", -20)
	picks := make(map[string]int)
	for i := 0; i < 50; i++ {
		a, ok := p.NextAction(i, namedState("s"), actions)
		require.True(t, ok)
		picks[a.Hash()]++
	}
	require.Greater(t, picks["a"], picks["b"])
}

func TestSoftMaxUpdate(t *testing.T) {
	p := NewSoftMaxPolicy(1, 0, constantReward(3))
	p.Update(0, namedState("s"), namedAction("a"), namedState("t"))
	require.Equal(t, 3.0, p.qTable.Get("s", "a", 0))
}
