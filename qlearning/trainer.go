package qlearning

import (
	"math/rand"

	"github.com/zeu5/sokoban-ql/sokoban"
)

// Params are the tunables of one training run. The trainer enforces no
// bounds, out-of-range values are the caller's responsibility.
type Params struct {
	Epsilon        float64
	Alpha          float64
	Gamma          float64
	RetracePenalty float64
	PushReward     float64
	GoalReward     float64
	FailurePenalty float64
	SuccessReward  float64
}

// DefaultParams are the values of the reference training run.
func DefaultParams() Params {
	return Params{
		Epsilon:        0.05,
		Alpha:          0.5,
		Gamma:          1.0,
		RetracePenalty: 1.0,
		PushReward:     0.5,
		GoalReward:     50,
		FailurePenalty: 1000,
		SuccessReward:  1000,
	}
}

// StepResult records what one training step did, for the presentation
// layer. Action is NoDirection when the step only restarted a finished
// episode; Before and After are then identical.
type StepResult struct {
	State     sokoban.State
	Before    Row
	Action    sokoban.Direction
	After     Row
	Reward    float64
	Pushed    bool
	Restarted bool
}

// Trainer performs tabular Q-learning steps against one game. It owns
// nothing concurrent: game, table and generator are used by exactly one
// training loop.
type Trainer struct {
	game   *sokoban.Game
	table  Table
	rng    *rand.Rand
	params Params
}

func NewTrainer(game *sokoban.Game, table Table, rng *rand.Rand, params Params) *Trainer {
	return &Trainer{
		game:   game,
		table:  table,
		rng:    rng,
		params: params,
	}
}

// Game exposes the game the trainer drives.
func (t *Trainer) Game() *sokoban.Game { return t.game }

// Params returns the active tunables.
func (t *Trainer) Params() Params { return t.params }

// Step runs one training iteration: pick an action, apply it, shape the
// reward and perform the temporal-difference update. A terminal episode
// is restarted instead, so a caller can loop on Step without
// special-casing terminal states.
func (t *Trainer) Step() StepResult {
	lastState := t.game.EncodedState()
	before := t.rowOf(lastState)

	if t.game.Succeeded() || t.game.Failed() {
		t.game.Restart()
		return StepResult{
			State:     lastState,
			Before:    before,
			Action:    sokoban.NoDirection,
			After:     before,
			Restarted: true,
		}
	}

	finishedBefore := t.game.Finished()
	action := FindAction(t.rng, t.params.Epsilon, t.game, t.table)
	pushed := t.game.Move(action)

	reward := t.params.GoalReward * float64(t.game.Finished()-finishedBefore)
	if t.game.SeenState(t.game.EncodedState()) {
		reward -= t.params.RetracePenalty
	}
	if pushed {
		reward += t.params.PushReward
	}
	if t.game.Succeeded() {
		reward += t.params.SuccessReward
	}
	if t.game.Failed() {
		reward -= t.params.FailurePenalty
	}

	// pessimistic floor so a state without legal moves never looks attractive
	maxQ := -(t.params.RetracePenalty + t.params.FailurePenalty + t.params.GoalReward*float64(t.game.BoxCount()))
	state := t.game.EncodedState()
	for _, d := range t.game.Directions().List() {
		if q := t.table.Get(state, d); q > maxQ {
			maxQ = q
		}
	}

	old := t.table.Get(lastState, action)
	t.table.Set(lastState, action, (1-t.params.Alpha)*old+t.params.Alpha*(reward+t.params.Gamma*maxQ))

	return StepResult{
		State:  lastState,
		Before: before,
		Action: action,
		After:  t.rowOf(lastState),
		Reward: reward,
		Pushed: pushed,
	}
}

func (t *Trainer) rowOf(state sokoban.State) Row {
	var row Row
	for i, d := range sokoban.Directions {
		row[i] = t.table.Get(state, d)
	}
	return row
}
