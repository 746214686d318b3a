package sokoban

import "testing"

func TestEnvironmentEpisode(t *testing.T) {
	g, err := NewGame(pushUpMaze)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := NewEnvironment(g)

	state := env.Reset()
	gs, ok := state.(*GameState)
	if !ok {
		t.Fatal("expected a game state")
	}
	if gs.Succeeded || gs.Failed {
		t.Fatal("the initial state must not be terminal")
	}
	if len(gs.Actions()) != 3 {
		t.Fatalf("expected 3 legal actions, got %d", len(gs.Actions()))
	}

	next := env.Step(&MoveAction{Dir: Up})
	ns, ok := next.(*GameState)
	if !ok {
		t.Fatal("expected a game state")
	}
	if !ns.Succeeded {
		t.Error("pushing the box up must solve the maze")
	}
	if !ns.Pushed {
		t.Error("the transition must report the push")
	}
	if ns.Retraced {
		t.Error("a fresh layout must not count as retraced")
	}
	if len(ns.Actions()) != 0 {
		t.Error("a terminal state offers no actions")
	}
	if ns.Hash() != g.EncodedState().Hex() {
		t.Error("the state hash must match the encoded state")
	}
}

func TestEnvironmentRetrace(t *testing.T) {
	g, err := NewGame(pushUpMaze)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env := NewEnvironment(g)
	env.Reset()

	env.Step(&MoveAction{Dir: Left})
	back := env.Step(&MoveAction{Dir: Right})
	gs := back.(*GameState)
	if !gs.Retraced {
		t.Error("returning to a visited layout must count as retraced")
	}
}

func TestShapedReward(t *testing.T) {
	reward := ShapedReward(50, 1, 0.5, 1000, 1000)

	prev := &GameState{Finished: 0}
	solve := &GameState{Finished: 1, Pushed: true, Succeeded: true}
	if got := reward(prev, moveUp, solve); got != 1050.5 {
		t.Errorf("expected 1050.5 for the solving push, got %v", got)
	}

	retrace := &GameState{Finished: 0, Retraced: true}
	if got := reward(prev, moveLeft, retrace); got != -1 {
		t.Errorf("expected -1 for a retraced step, got %v", got)
	}

	fail := &GameState{Finished: 0, Pushed: true, Failed: true}
	if got := reward(prev, moveRight, fail); got != -999.5 {
		t.Errorf("expected -999.5 for a failing push, got %v", got)
	}
}
