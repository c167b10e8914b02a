package main

import (
	"os"

	"wordvault/cmd/wordvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
