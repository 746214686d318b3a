package commands

import (
	"context"
	"os"
	"os/signal"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeu5/sokoban-ql/policies"
	"github.com/zeu5/sokoban-ql/qlearning"
	"github.com/zeu5/sokoban-ql/rl"
	"github.com/zeu5/sokoban-ql/sokoban"
)

func CompareCommand() *cobra.Command {
	var mazePath string
	var recordPolicy bool
	params := qlearning.DefaultParams()

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare exploration policies on the same maze",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(mazePath, recordPolicy, params)
		},
	}
	cmd.Flags().StringVarP(&mazePath, "maze", "m", "", "Maze file to compare on, stdin when empty")
	cmd.Flags().BoolVar(&recordPolicy, "record-policy", false, "Record the epsilon-greedy Q table as JSON at the end")
	addParamFlags(cmd, &params)
	return cmd
}

func runCompare(mazePath string, recordPolicy bool, params qlearning.Params) error {
	log := logrus.WithField("command", "compare")

	mazeText, err := readMaze(mazePath)
	if err != nil {
		return err
	}
	// every experiment owns its maze copy so episodes never interfere
	newEnv := func() (*sokoban.Environment, error) {
		game, err := sokoban.NewGame(mazeText)
		if err != nil {
			return nil, err
		}
		return sokoban.NewEnvironment(game), nil
	}

	randomEnv, err := newEnv()
	if err != nil {
		return err
	}
	softmaxEnv, err := newEnv()
	if err != nil {
		return err
	}
	greedyEnv, err := newEnv()
	if err != nil {
		return err
	}

	reward := sokoban.ShapedReward(
		params.GoalReward,
		params.RetracePenalty,
		params.PushReward,
		params.SuccessReward,
		params.FailurePenalty,
	)
	greedy := policies.NewEpsilonGreedyPolicy(params.Alpha, params.Gamma, params.Epsilon, reward, uint64(runSeed()))

	c := rl.NewComparison(runs)
	c.AddAnalysis("coverage", rl.CoverageAnalyzer(), rl.LinePlotComparator(saveDir, "State coverage", "Unique states"))
	c.AddAnalysis("solved", sokoban.SolvedAnalyzer(), rl.LinePlotComparator(saveDir, "Episodes solved", "Solved episodes"))
	c.AddAnalysis("pushes", sokoban.PushAnalyzer(), rl.NoopComparator())

	c.AddExperiment(rl.NewExperiment("Random", &rl.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policies.NewRandomPolicy(uint64(runSeed())),
		Environment: randomEnv,
	}))
	c.AddExperiment(rl.NewExperiment("SoftMax", &rl.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policies.NewSoftMaxPolicy(params.Alpha, params.Gamma, reward),
		Environment: softmaxEnv,
	}))
	c.AddExperiment(rl.NewExperiment("EpsilonGreedy", &rl.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      greedy,
		Environment: greedyEnv,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(logrus.Fields{
		"episodes": episodes,
		"horizon":  horizon,
		"runs":     runs,
	}).Info("starting comparison")
	c.Run(ctx)

	if recordPolicy {
		policyPath := path.Join(saveDir, "epsilon_greedy_qtable.json")
		if err := greedy.Record(policyPath); err != nil {
			return err
		}
		log.WithField("path", policyPath).Info("recorded policy")
	}
	return nil
}
