package sokoban

import "github.com/zeu5/sokoban-ql/rl"

// MoveAction is one cardinal move exposed to the generic RL harness.
type MoveAction struct {
	Dir Direction
}

var _ rl.Action = &MoveAction{}

func (a *MoveAction) Hash() string {
	return a.Dir.String()
}

var (
	moveUp    = &MoveAction{Dir: Up}
	moveLeft  = &MoveAction{Dir: Left}
	moveRight = &MoveAction{Dir: Right}
	moveDown  = &MoveAction{Dir: Down}
)

func moveAction(d Direction) *MoveAction {
	switch d {
	case Up:
		return moveUp
	case Left:
		return moveLeft
	case Right:
		return moveRight
	case Down:
		return moveDown
	}
	return nil
}

// GameState is an immutable snapshot of the game for the RL harness.
// Retraced and Pushed describe the transition that produced it, so reward
// functions can score the step from the states alone.
type GameState struct {
	Encoded   State
	Legal     Direction
	Succeeded bool
	Failed    bool
	Finished  int
	Retraced  bool
	Pushed    bool
}

var _ rl.State = &GameState{}

func (s *GameState) Hash() string {
	return s.Encoded.Hex()
}

// Actions lists the legal moves, empty when the episode is terminal.
func (s *GameState) Actions() []rl.Action {
	if s.Succeeded || s.Failed {
		return nil
	}
	out := make([]rl.Action, 0, 4)
	for _, d := range s.Legal.List() {
		out = append(out, moveAction(d))
	}
	return out
}

// Environment adapts a Game to the generic harness so the exploration
// policies can be compared on the same maze.
type Environment struct {
	game *Game
}

var _ rl.Environment = &Environment{}

func NewEnvironment(game *Game) *Environment {
	return &Environment{game: game}
}

func (e *Environment) Game() *Game { return e.game }

func (e *Environment) Reset() rl.State {
	e.game.Restart()
	return e.snapshot(false, false)
}

func (e *Environment) Step(a rl.Action) rl.State {
	move, ok := a.(*MoveAction)
	if !ok {
		return e.snapshot(false, false)
	}
	pushed := e.game.Move(move.Dir)
	retraced := e.game.SeenState(e.game.EncodedState())
	return e.snapshot(retraced, pushed)
}

func (e *Environment) snapshot(retraced, pushed bool) *GameState {
	return &GameState{
		Encoded:   e.game.EncodedState(),
		Legal:     e.game.Directions(),
		Succeeded: e.game.Succeeded(),
		Failed:    e.game.Failed(),
		Finished:  e.game.Finished(),
		Retraced:  retraced,
		Pushed:    pushed,
	}
}

// ShapedReward mirrors the trainer's reward shaping for the generic
// policies: goal progress, retrace penalty, push bonus and the terminal
// bonus/penalty.
func ShapedReward(goalReward, retracePenalty, pushReward, successReward, failurePenalty float64) rl.RewardFunc {
	return func(state rl.State, _ rl.Action, next rl.State) float64 {
		prev, ok1 := state.(*GameState)
		cur, ok2 := next.(*GameState)
		if !ok1 || !ok2 {
			return 0
		}
		reward := goalReward * float64(cur.Finished-prev.Finished)
		if cur.Retraced {
			reward -= retracePenalty
		}
		if cur.Pushed {
			reward += pushReward
		}
		if cur.Succeeded {
			reward += successReward
		}
		if cur.Failed {
			reward -= failurePenalty
		}
		return reward
	}
}
