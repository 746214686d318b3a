package sokoban

import "github.com/zeu5/sokoban-ql/rl"

// SolvedAnalyzer counts the episodes that ended in a solved maze. The
// dataset is one cumulative count per episode.
func SolvedAnalyzer() rl.Analyzer {
	return func(name string, traces []*rl.Trace) rl.DataSet {
		solved := 0
		perEpisode := make([]int, 0, len(traces))
		for _, trace := range traces {
			if _, _, last, ok := trace.Last(); ok {
				if s, ok := last.(*GameState); ok && s.Succeeded {
					solved++
				}
			}
			perEpisode = append(perEpisode, solved)
		}
		return perEpisode
	}
}

// PushAnalyzer counts the pushes per episode, a cheap proxy for how often
// a policy actually interacts with the boxes.
func PushAnalyzer() rl.Analyzer {
	return func(name string, traces []*rl.Trace) rl.DataSet {
		perEpisode := make([]int, 0, len(traces))
		for _, trace := range traces {
			pushes := 0
			for i := 0; i < trace.Len(); i++ {
				_, _, next, _ := trace.Get(i)
				if s, ok := next.(*GameState); ok && s.Pushed {
					pushes++
				}
			}
			perEpisode = append(perEpisode, pushes)
		}
		return perEpisode
	}
}
