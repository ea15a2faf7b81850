package main

import (
	"fmt"
	"os"

	"vinai-server/cmd/vinaictl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
