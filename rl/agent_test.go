package rl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// forwardPolicy always walks forward and counts the callbacks it receives.
type forwardPolicy struct {
	updates    int
	iterations int
	resets     int
}

func (p *forwardPolicy) NextAction(step int, state State, actions []Action) (Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	return actions[0], true
}

func (p *forwardPolicy) Update(int, State, Action, State) { p.updates++ }

func (p *forwardPolicy) UpdateIteration(int, *Trace) { p.iterations++ }

func (p *forwardPolicy) Reset() { p.resets++ }

func TestAgentRunEpisode(t *testing.T) {
	policy := &forwardPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: &lineEnv{goal: 3},
	})

	trace := agent.RunEpisode(0)
	// the terminal state ends the episode before the horizon
	require.Equal(t, 3, trace.Len())
	require.Equal(t, 3, policy.updates)
	require.Equal(t, 1, policy.iterations)

	_, _, last, ok := trace.Last()
	require.True(t, ok)
	require.Equal(t, "3", last.Hash())
}

func TestAgentHorizonCutsEpisode(t *testing.T) {
	policy := &forwardPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     5,
		Policy:      policy,
		Environment: &lineEnv{goal: 100},
	})

	trace := agent.RunEpisode(0)
	require.Equal(t, 5, trace.Len())
}

func TestAgentRun(t *testing.T) {
	policy := &forwardPolicy{}
	agent := NewAgent(&AgentConfig{
		Episodes:    4,
		Horizon:     10,
		Policy:      policy,
		Environment: &lineEnv{goal: 3},
	})

	agent.Run(context.Background())
	require.Len(t, agent.Traces(), 4)
	require.Equal(t, 4, policy.iterations)
}

func TestAgentRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agent := NewAgent(&AgentConfig{
		Episodes:    4,
		Horizon:     10,
		Policy:      &forwardPolicy{},
		Environment: &lineEnv{goal: 3},
	})
	agent.Run(ctx)
	require.Empty(t, agent.Traces())
}

func TestComparisonRunsAndResets(t *testing.T) {
	policy := &forwardPolicy{}
	exp := NewExperiment("forward", &AgentConfig{
		Episodes:    2,
		Horizon:     10,
		Policy:      policy,
		Environment: &lineEnv{goal: 3},
	})

	analyzed := 0
	compared := 0
	c := NewComparison(3)
	c.AddExperiment(exp)
	c.AddAnalysis("coverage", func(name string, traces []*Trace) DataSet {
		analyzed++
		return CoverageAnalyzer()(name, traces)
	}, func(run int, names []string, datasets []DataSet) {
		compared++
		require.Equal(t, []string{"forward"}, names)
		require.Len(t, datasets, 1)
		// both episodes start from the same three visited states
		require.Equal(t, []int{3, 3}, datasets[0].([]int))
	})

	c.Run(context.Background())
	require.Equal(t, 3, analyzed)
	require.Equal(t, 3, compared)
	// the experiment is reset between runs but kept after the last one
	require.Equal(t, 2, policy.resets)
	require.Len(t, exp.Result, 2)
}
