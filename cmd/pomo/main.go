package main

import (
	"os"

	"github.com/faize-ai/pomo/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
