package commands

import (
	"fmt"
	"strings"

	"github.com/zeu5/sokoban-ql/qlearning"
	"github.com/zeu5/sokoban-ql/sokoban"
)

const valueColumnWidth = 12

func clearConsole() {
	fmt.Print("\x1b[H\x1b[2J")
}

func formatHeader() string {
	return fmt.Sprintf("%18s%*s%*s%*s%*s",
		"State",
		valueColumnWidth, "Up",
		valueColumnWidth, "Left",
		valueColumnWidth, "Right",
		valueColumnWidth, "Down")
}

func formatRow(state sokoban.State, row qlearning.Row) string {
	return fmt.Sprintf("%18s%*.4f%*.4f%*.4f%*.4f",
		state.Hex(),
		valueColumnWidth, row[0],
		valueColumnWidth, row[1],
		valueColumnWidth, row[2],
		valueColumnWidth, row[3])
}

func formatQTable(table *qlearning.MapTable) string {
	var b strings.Builder
	b.WriteString(formatHeader())
	b.WriteByte('\n')
	for _, state := range table.States() {
		b.WriteString(formatRow(state, table.Row(state)))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatStepResult(res qlearning.StepResult) string {
	if res.Restarted {
		return fmt.Sprintf("Restarted from %s", res.State.Hex())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Action: %s, Reward: %.4f", res.Action, res.Reward)
	if res.Pushed {
		b.WriteString(", Pushed")
	}
	b.WriteByte('\n')
	b.WriteString(formatHeader())
	b.WriteByte('\n')
	b.WriteString(formatRow(res.State, res.Before))
	b.WriteByte('\n')
	b.WriteString(formatRow(res.State, res.After))
	return b.String()
}
