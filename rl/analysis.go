package rl

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CoverageAnalyzer counts the unique state hashes seen so far after each
// episode. The dataset is one cumulative count per episode.
func CoverageAnalyzer() Analyzer {
	return func(name string, traces []*Trace) DataSet {
		uniqueStates := make(map[string]bool)
		numUniqueStates := make([]int, 0, len(traces))
		for _, trace := range traces {
			for j := 0; j < trace.Len(); j++ {
				s, _, _, _ := trace.Get(j)
				uniqueStates[s.Hash()] = true
			}
			numUniqueStates = append(numUniqueStates, len(uniqueStates))
		}
		return numUniqueStates
	}
}

// LinePlotComparator plots the []int dataset of every experiment as one
// line per experiment and saves a PNG per run under plotPath.
func LinePlotComparator(plotPath, title, yLabel string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	fileName := strings.ReplaceAll(strings.ToLower(title), " ", "_")
	return func(run int, names []string, datasets []DataSet) {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = yLabel
		for i := 0; i < len(names); i++ {
			series, ok := datasets[i].([]int)
			if !ok {
				continue
			}
			points := make(plotter.XYs, len(series))
			for j, v := range series {
				points[j] = plotter.XY{X: float64(j), Y: float64(v)}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(series) > 0 {
				fmt.Printf("%s: %d for experiment: %s\n", yLabel, series[len(series)-1], names[i])
			}
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_"+fileName+".png"))
	}
}
