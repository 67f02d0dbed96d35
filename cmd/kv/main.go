package main

import (
	"os"

	"clikv/cmd/kv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
