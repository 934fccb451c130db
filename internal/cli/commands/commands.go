package commands

import (
	"pwl/internal/cleanup"
	"pwl/internal/cli"
	"pwl/internal/config"
	"pwl/internal/discovery"
	"pwl/internal/execution"
	"pwl/internal/report"
	"pwl/internal/storage"
	"pwl/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Clean   *CleanCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.SkipDirs)
	filter := discovery.NewFilter()
	caseParser := discovery.NewParser()
	composer := execution.NewComposer(cfg)
	runner := execution.NewRunner(cfg)
	reportPaths := report.NewPathGenerator(cfg)
	cleaner := cleanup.NewCleaner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, caseParser)
	historyViewer := ui.NewHistoryViewer(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, composer, runner, reportPaths, cleaner, jsonStorage, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Clean:   NewCleanCommand(cfg, cleaner),
		History: NewHistoryCommand(cfg, jsonStorage, historyViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run browser tests through the external runner",
		Long:  "Compose and execute one pytest-playwright invocation, generate a timestamped HTML report, and clean up stale artifacts afterward",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().BoolVar(&flags.All, "all", false, "Run the entire test directory")
	runCmd.Flags().StringVar(&flags.TestFile, "test", "", "Run a single test file under the test directory")
	runCmd.Flags().StringVar(&flags.Module, "module", "", "Run tests for a module (file test_<name>.py by convention)")
	runCmd.Flags().StringVar(&flags.Case, "case", "", "Narrow to a single test case (requires --module)")
	runCmd.Flags().StringVar(&flags.Browser, "browser", "", "Browser to run tests in: chromium, firefox, webkit (default chromium)")
	runCmd.Flags().BoolVar(&flags.Headless, "headless", false, "Run the browser in headless mode")
	runCmd.Flags().BoolVar(&flags.NoCleanup, "no-cleanup", false, "Skip artifact cleanup after the run")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test files",
		Long:  "Scan the test directory and list test files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_login*' or '*contact*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases inside each file")
	rootCmd.AddCommand(listCmd)

	// Clean command
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Purge stale reports, logs and screenshots",
		Long:  "Delete old HTML reports, execution logs and screenshot folders, keeping only the most recent ones",
		RunE:  c.Clean.Execute,
	}
	cleanCmd.Flags().IntVar(&flags.KeepReports, "reports", cfg.KeepArtifacts, "Number of most recent reports (and logs) to keep")
	cleanCmd.Flags().StringVar(&flags.Screenshots, "screenshots", cleanup.StrategyMatchReports, "Screenshot cleanup strategy: match_reports or last_execution")
	cleanCmd.Flags().IntVar(&flags.MaxScreenshots, "max-screenshots", cfg.KeepArtifacts, "Screenshot folders to keep with the last_execution strategy")
	cleanCmd.Flags().IntVar(&flags.ReportsToMatch, "reports-to-match", cfg.KeepArtifacts, "Reports to match screenshots against with the match_reports strategy")
	rootCmd.AddCommand(cleanCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse recorded test runs",
		Long:  "Display previously recorded runs from storage/run-history.json in an interactive viewer",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print a plain table instead of the interactive viewer")
	rootCmd.AddCommand(historyCmd)
}
