package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pwl/internal/cleanup"
	"pwl/internal/config"
)

// CleanCommand handles the clean command
type CleanCommand struct {
	config  *config.Config
	cleaner *cleanup.Cleaner
}

// NewCleanCommand creates a new CleanCommand
func NewCleanCommand(cfg *config.Config, cleaner *cleanup.Cleaner) *CleanCommand {
	return &CleanCommand{
		config:  cfg,
		cleaner: cleaner,
	}
}

// Execute runs the command
func (cc *CleanCommand) Execute(cmd *cobra.Command, args []string) error {
	opts := cleanup.DefaultOptions(cc.config)

	if v, err := cmd.Flags().GetInt("reports"); err == nil {
		opts.KeepReports = v
	}
	if v, err := cmd.Flags().GetString("screenshots"); err == nil {
		opts.Strategy = v
	}
	if v, err := cmd.Flags().GetInt("max-screenshots"); err == nil {
		opts.MaxScreenshots = v
	}
	if v, err := cmd.Flags().GetInt("reports-to-match"); err == nil {
		opts.ReportsToMatch = v
	}

	if err := cc.cleaner.Run(opts); err != nil {
		return err
	}

	color.Green("Cleanup completed")
	return nil
}
