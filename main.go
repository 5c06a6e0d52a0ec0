package main

import (
	"os"

	"github.com/kairohq/kairo-agents/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
