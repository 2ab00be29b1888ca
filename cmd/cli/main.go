// Package main is the entry point for the moving-cost CLI.
package main

import (
	"os"

	"moving-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
