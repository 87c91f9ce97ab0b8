package main

import (
	"os"

	"github.com/contafacil-dev/contafacil/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
