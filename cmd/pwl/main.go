package main

import (
	"errors"
	"fmt"
	"os"

	"pwl/internal/cli"
	"pwl/internal/cli/commands"
	"pwl/internal/config"
	"pwl/internal/execution"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "pwl",
		Short:   "Playwright test launcher",
		Long:    `A command-line launcher for the Playwright browser automation test framework. Compose and execute test runs, manage timestamped HTML reports, and clean up stale artifacts.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		// A failed test run exits with the runner's own code
		var exitErr *execution.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
