package commands

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeu5/sokoban-ql/inspect"
	"github.com/zeu5/sokoban-ql/qlearning"
	"github.com/zeu5/sokoban-ql/sokoban"
)

func ServeCommand() *cobra.Command {
	var mazePath string
	var addr string
	var warmup int64
	params := qlearning.DefaultParams()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a maze over HTTP for manual play and Q inspection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(mazePath, addr, warmup, params)
		},
	}
	cmd.Flags().StringVarP(&mazePath, "maze", "m", "", "Maze file to serve, stdin when empty")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	cmd.Flags().Int64Var(&warmup, "warmup", 0, "Training steps to run before serving")
	addParamFlags(cmd, &params)
	return cmd
}

func runServe(mazePath, addr string, warmup int64, params qlearning.Params) error {
	log := logrus.WithField("command", "serve")

	mazeText, err := readMaze(mazePath)
	if err != nil {
		return err
	}
	game, err := sokoban.NewGame(mazeText)
	if err != nil {
		return err
	}

	table := qlearning.NewMapTable()
	rng := rand.New(rand.NewSource(runSeed()))
	trainer := qlearning.NewTrainer(game, table, rng, params)

	for i := int64(0); i < warmup; i++ {
		trainer.Step()
	}
	if warmup > 0 {
		log.WithFields(logrus.Fields{
			"steps":  warmup,
			"states": table.Len(),
		}).Info("warmup finished")
	}

	log.WithField("addr", addr).Info("serving")
	return inspect.NewServer(game, table, trainer).Run(addr)
}
