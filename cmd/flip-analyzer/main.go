// Package main is the entry point for flip-analyzer.
package main

import (
	"os"

	"github.com/jmorrow/flip-analyzer/cmd/flip-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
