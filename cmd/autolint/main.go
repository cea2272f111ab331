// Package main is the autolint command.
package main

import (
	"os"

	"github.com/leapstack-labs/autolint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
