package main

import (
	"fmt"

	"github.com/zeu5/sokoban-ql/commands"
)

func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
