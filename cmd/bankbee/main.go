package main

import (
	"os"

	"github.com/Stefasaur/bank-bee-csv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
