package commands

import (
	"errors"

	"pwl/internal/cleanup"
	"pwl/internal/config"
	"pwl/internal/domain"
	"pwl/internal/execution"
	"pwl/internal/report"
	"pwl/internal/storage"
	"pwl/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	composer    *execution.Composer
	runner      *execution.Runner
	reportPaths *report.PathGenerator
	cleaner     *cleanup.Cleaner
	storage     storage.Storage
	formatter   *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	composer *execution.Composer,
	runner *execution.Runner,
	reportPaths *report.PathGenerator,
	cleaner *cleanup.Cleaner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:      cfg,
		composer:    composer,
		runner:      runner,
		reportPaths: reportPaths,
		cleaner:     cleaner,
		storage:     st,
		formatter:   formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	runConfig, err := rc.buildRunConfig()
	if err != nil {
		return err
	}

	// Past validation: a failing run is reported through the summary
	// banner, not through cobra's usage output.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Report path is generated once, before the runner starts
	reportPath, err := rc.reportPaths.Generate()
	if err != nil {
		return err
	}

	runArgs := rc.composer.Compose(runConfig, reportPath)

	rc.formatter.PrintRunHeader(runConfig, reportPath)

	exitCode, duration, runErr := rc.runner.Run(runArgs)
	if runErr != nil {
		color.Red("%v", runErr)
	}

	rc.formatter.PrintRunSummary(exitCode, reportPath, duration)

	// History bookkeeping never changes the run's outcome
	record := domain.NewRunRecord(runConfig, reportPath, exitCode, duration)
	if err := rc.storage.Append(record); err != nil {
		color.Yellow("Could not record run: %v", err)
	}

	if !rc.config.Flags.NoCleanup {
		// Cleanup runs after every finished run, pass or fail,
		// and its outcome never alters the exit code.
		if err := rc.cleaner.Run(cleanup.DefaultOptions(rc.config)); err != nil {
			color.Yellow("Cleanup failed: %v", err)
		}
	}

	if exitCode != 0 {
		return &execution.ExitCodeError{Code: exitCode}
	}
	return nil
}

// buildRunConfig validates the selection flags and resolves precedence:
// --all wins over --test, which wins over --module; first match wins.
func (rc *RunCommand) buildRunConfig() (domain.RunConfig, error) {
	flags := rc.config.Flags

	if !flags.All && flags.TestFile == "" && flags.Module == "" {
		return domain.RunConfig{}, errors.New("no tests selected: use --all, --test <file> or --module <name>")
	}
	if flags.Case != "" && flags.Module == "" {
		return domain.RunConfig{}, errors.New("--case requires --module")
	}

	runConfig := domain.RunConfig{
		Browser:  rc.config.GetBrowser(),
		Headless: flags.Headless,
	}

	switch {
	case flags.All:
		runConfig.Mode = domain.SelectAll
	case flags.TestFile != "":
		runConfig.Mode = domain.SelectFile
		runConfig.TestFile = flags.TestFile
	default:
		runConfig.Mode = domain.SelectModule
		runConfig.Module = flags.Module
		runConfig.Case = flags.Case
	}

	return runConfig, nil
}
