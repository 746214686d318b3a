package commands

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	episodes int
	horizon  int
	runs     int
	saveDir  string
	seed     int64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "sokoban-ql",
		Short: "Tabular Q-learning on Sokoban mazes",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 500, "Horizon of each episode")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed, 0 seeds from the wall clock")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(CompareCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

func runSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
