package main

import (
	"os"

	"github.com/katalvlaran/gridwalk/cmd/aoc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
