package rl

import (
	"context"
	"fmt"
)

// Experiment encapsulates one named policy/environment pairing.
type Experiment struct {
	Name   string
	config *AgentConfig
	Result []*Trace
}

func NewExperiment(name string, config *AgentConfig) *Experiment {
	return &Experiment{
		Name:   name,
		config: config,
		Result: make([]*Trace, 0),
	}
}

// Run the experiment for the configured number of episodes, polling the
// context between episodes.
func (e *Experiment) Run(ctx context.Context) {
	agent := NewAgent(e.config)
	for i := 0; i < e.config.Episodes; i++ {
		select {
		case <-ctx.Done():
			e.Result = agent.Traces()
			return
		default:
		}
		fmt.Printf("\rExperiment: %s, Episode: %d/%d", e.Name, i+1, e.config.Episodes)
		agent.traces = append(agent.traces, agent.RunEpisode(i))
	}
	fmt.Println("")
	e.Result = agent.Traces()
}

// Reset clears the traces and everything the policy has learned, so the
// same experiment can be repeated across runs.
func (e *Experiment) Reset() {
	e.Result = make([]*Trace, 0)
	e.config.Policy.Reset()
}

// Generic dataset produced by processing traces
type DataSet interface{}

// Analyzer compresses the traces of one experiment into a DataSet
type Analyzer func(name string, traces []*Trace) DataSet

// Comparator differentiates between the datasets of the compared
// experiments. Called once per run.
type Comparator func(run int, names []string, datasets []DataSet)

func NoopComparator() Comparator {
	return func(int, []string, []DataSet) {}
}

// Comparison runs a set of experiments side by side, analyzes their
// traces and hands the resulting datasets to the comparators.
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	runs        int
}

func NewComparison(runs int) *Comparison {
	if runs < 1 {
		runs = 1
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		runs:        runs,
	}
}

// AddAnalysis registers an analyzer and the comparator for its datasets.
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run executes every experiment once per run and compares the datasets.
func (c *Comparison) Run(ctx context.Context) {
	for run := 0; run < c.runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}
		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return
			default:
			}
			e.Run(ctx)
			for name, analyze := range c.analyzers {
				datasets[name][i] = analyze(e.Name, e.Result)
			}
			names[i] = e.Name
			if run < c.runs-1 {
				e.Reset()
			}
		}
		for name, compare := range c.comparators {
			compare(run, names, datasets[name])
		}
	}
}
