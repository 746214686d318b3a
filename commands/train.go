package commands

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeu5/sokoban-ql/qlearning"
	"github.com/zeu5/sokoban-ql/sokoban"
)

type trainOptions struct {
	mazePath      string
	sleepMs       int64
	quiet         int64
	steps         int64
	printQSuccess bool
	printQFailure bool
	printQExit    bool
	printQAll     bool
	randomDevice  bool
	params        qlearning.Params
}

func addParamFlags(cmd *cobra.Command, params *qlearning.Params) {
	defaults := qlearning.DefaultParams()
	cmd.Flags().Float64Var(&params.Epsilon, "epsilon", defaults.Epsilon, "Exploration rate")
	cmd.Flags().Float64Var(&params.Alpha, "alpha", defaults.Alpha, "Learning rate")
	cmd.Flags().Float64Var(&params.Gamma, "gamma", defaults.Gamma, "Discount factor")
	cmd.Flags().Float64Var(&params.RetracePenalty, "retrace-penalty", defaults.RetracePenalty, "Penalty for revisiting a state within an episode")
	cmd.Flags().Float64Var(&params.PushReward, "push-reward", defaults.PushReward, "Reward for pushing a box")
	cmd.Flags().Float64Var(&params.GoalReward, "goal-reward", defaults.GoalReward, "Reward per box moved onto a goal")
	cmd.Flags().Float64Var(&params.FailurePenalty, "failure-penalty", defaults.FailurePenalty, "Penalty for reaching a dead state")
	cmd.Flags().Float64Var(&params.SuccessReward, "success-reward", defaults.SuccessReward, "Reward for solving the maze")
}

func readMaze(path string) (string, error) {
	if path == "" {
		bs, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(bs), nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func trainSeed(randomDevice bool) int64 {
	if !randomDevice {
		return runSeed()
	}
	var bs [8]byte
	if _, err := crand.Read(bs[:]); err != nil {
		return runSeed()
	}
	return int64(binary.LittleEndian.Uint64(bs[:]))
}

func TrainCommand() *cobra.Command {
	opts := &trainOptions{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train on one maze and render every step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.mazePath, "maze", "m", "", "Maze file to train on, stdin when empty")
	cmd.Flags().Int64Var(&opts.sleepMs, "sleep", 100, "Sleep for the given milliseconds between two rendered steps")
	cmd.Flags().Int64Var(&opts.quiet, "quiet", 0, "Train for the given number of steps before rendering anything")
	cmd.Flags().Int64Var(&opts.steps, "steps", 0, "Stop after the given number of rendered steps, 0 runs until interrupted")
	cmd.Flags().BoolVar(&opts.printQAll, "print-q", false, "Print the Q table on success, failure and exit")
	cmd.Flags().BoolVar(&opts.printQSuccess, "print-q-success", false, "Print the Q table on success")
	cmd.Flags().BoolVar(&opts.printQFailure, "print-q-failure", false, "Print the Q table on failure")
	cmd.Flags().BoolVar(&opts.printQExit, "print-q-exit", false, "Print the Q table on exit")
	cmd.Flags().BoolVar(&opts.randomDevice, "random-device", false, "Seed from the system entropy source instead of the wall clock")
	addParamFlags(cmd, &opts.params)
	return cmd
}

func runTrain(opts *trainOptions) error {
	log := logrus.WithField("command", "train")

	if opts.printQAll {
		opts.printQSuccess = true
		opts.printQFailure = true
		opts.printQExit = true
	}
	if opts.sleepMs < 0 {
		opts.sleepMs = 0
	}
	if opts.quiet < 0 {
		opts.quiet = 0
	}

	mazeText, err := readMaze(opts.mazePath)
	if err != nil {
		return err
	}
	game, err := sokoban.NewGame(mazeText)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"height":     game.Maze().Height(),
		"width":      game.Maze().Width(),
		"boxes":      game.BoxCount(),
		"floor_bits": game.Maze().FloorBits(),
	}).Info("maze parsed")

	trainerSeed := trainSeed(opts.randomDevice)
	rng := rand.New(rand.NewSource(trainerSeed))
	log.WithField("seed", trainerSeed).Info("starting training")

	table := qlearning.NewMapTable()
	trainer := qlearning.NewTrainer(game, table, rng, opts.params)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for i := int64(0); i < opts.quiet; i++ {
		select {
		case <-ctx.Done():
			if opts.printQExit {
				fmt.Println(formatQTable(table))
			}
			return nil
		default:
		}
		trainer.Step()
	}

	rendered := int64(0)
	for opts.steps == 0 || rendered < opts.steps {
		select {
		case <-ctx.Done():
			fmt.Println("")
			if opts.printQExit {
				fmt.Println(formatQTable(table))
			}
			return nil
		default:
		}

		res := trainer.Step()
		rendered++

		clearConsole()
		fmt.Println("")
		fmt.Println(game.Render())
		fmt.Println("")
		fmt.Printf("Time: %d\n", game.TimeElapsed())
		fmt.Printf("State: %s\n", game.EncodedState().Hex())
		fmt.Println("")
		fmt.Println(formatHeader())
		fmt.Println(formatRow(game.EncodedState(), table.Row(game.EncodedState())))
		fmt.Println("")
		fmt.Println(formatStepResult(res))
		if game.Succeeded() {
			fmt.Println("Succeeded")
			if opts.printQSuccess {
				fmt.Println(formatQTable(table))
			}
		} else if game.Failed() {
			fmt.Println("Failed")
			if opts.printQFailure {
				fmt.Println(formatQTable(table))
			}
		}

		if opts.sleepMs > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(time.Duration(opts.sleepMs) * time.Millisecond):
			}
		}
	}

	if opts.printQExit {
		fmt.Println(formatQTable(table))
	}
	return nil
}
