package rl

// Environment drives one episodic system under training.
type Environment interface {
	// Reset is called at the start of each episode
	Reset() State
	// Step applies one action and returns the resulting state
	Step(Action) State
}

// State of the system that policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state, empty when terminal
	Actions() []Action
}

// An Action that a policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// RewardFunc scores one transition for policies that learn from rewards.
type RewardFunc func(state State, action Action, next State) float64
