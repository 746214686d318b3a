package rl

import "context"

// Policy chooses actions and learns from the observed transitions.
type Policy interface {
	// NextAction picks among the actions available in the state
	NextAction(step int, state State, actions []Action) (Action, bool)
	// Update is called after every step with the observed transition
	Update(step int, state State, action Action, nextState State)
	// UpdateIteration is called at the end of every episode with its trace
	UpdateIteration(episode int, trace *Trace)
	// Reset discards everything learned so far
	Reset()
}

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// RL Agent configured with the corresponding policy and environment
type Agent struct {
	config      *AgentConfig
	traces      []*Trace
	policy      Policy
	environment Environment
}

func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, 0, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run executes the configured number of episodes. Cancellation is polled
// between episodes only, an episode always runs to completion.
func (a *Agent) Run(ctx context.Context) {
	for i := 0; i < a.config.Episodes; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		a.traces = append(a.traces, a.RunEpisode(i))
	}
}

// RunEpisode runs a single episode up to the horizon and returns its trace.
// The episode ends early when the state offers no actions.
func (a *Agent) RunEpisode(episode int) *Trace {
	state := a.environment.Reset()
	trace := NewTrace()
	actions := state.Actions()

	for i := 0; i < a.config.Horizon; i++ {
		if len(actions) == 0 {
			break
		}
		nextAction, ok := a.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		nextState := a.environment.Step(nextAction)
		a.policy.Update(i, state, nextAction, nextState)

		trace.Append(i, state, nextAction, nextState)
		state = nextState
		actions = nextState.Actions()
	}
	a.policy.UpdateIteration(episode, trace)

	return trace
}

// Traces collected so far.
func (a *Agent) Traces() []*Trace {
	return a.traces
}
