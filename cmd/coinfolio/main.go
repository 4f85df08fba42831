package main

import (
	"os"

	"github.com/coinfolio-dev/coinfolio/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
