package main

import (
	"os"

	"marsdome/cmd/marsdome/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
