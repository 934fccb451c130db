package commands

import (
	"errors"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pwl/internal/config"
	"pwl/internal/storage"
	"pwl/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.HistoryViewer
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, st storage.Storage, viewer *ui.HistoryViewer) *HistoryCommand {
	return &HistoryCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	history, err := hc.storage.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			color.Yellow("No recorded runs yet")
			return nil
		}
		return err
	}

	if hc.config.Flags.Plain {
		return hc.viewer.PrintPlain(history)
	}
	return hc.viewer.View(history)
}
