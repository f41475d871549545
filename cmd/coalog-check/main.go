package main

import (
	"os"

	"github.com/msto63/coalog/cmd/coalog-check/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
