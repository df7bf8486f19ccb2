// Package main is the entry point for the e2e-suite application
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/qa-labs/e2e-suite/cmd"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runTUI := parseArgs(os.Args)

	if !runTUI {
		// Cobra handles --env itself.
		cmd.Execute()
		return
	}

	if err := cmd.Init(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cmd.Close()

	if err := cmd.RunInteractive(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cmd.Close()
		os.Exit(1)
	}
}

// parseArgs extracts the env file and reports whether only --env was given, which means TUI mode.
func parseArgs(args []string) (envFile string, runTUI bool) {
	for i, arg := range args {
		if arg == envFlag && i+1 < len(args) {
			envFile = args[i+1]
			break
		}
		if strings.HasPrefix(arg, envFlagEqual) {
			envFile = arg[len(envFlagEqual):]
			break
		}
	}

	switch len(args) {
	case 1:
		return envFile, true
	case 2:
		// A bare --env is left to cobra, which reports the missing value.
		return envFile, strings.HasPrefix(args[1], envFlagEqual)
	case 3:
		return envFile, args[1] == envFlag
	default:
		return envFile, false
	}
}
