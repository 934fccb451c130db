package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pwl/internal/config"
	"pwl/internal/domain"
)

// HistoryViewer displays recorded runs in an interactive TUI
type HistoryViewer struct {
	config *config.Config
}

// NewHistoryViewer creates a new HistoryViewer
func NewHistoryViewer(cfg *config.Config) *HistoryViewer {
	return &HistoryViewer{config: cfg}
}

// View displays the run history in an interactive TUI. Newest runs first.
func (hv *HistoryViewer) View(history *domain.RunHistory) error {
	if len(history.Runs) == 0 {
		color.Yellow("No recorded runs yet")
		return nil
	}

	// Newest first
	runs := make([]domain.RunRecord, len(history.Runs))
	for i, r := range history.Runs {
		runs[len(history.Runs)-1-i] = r
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		run := runs[index]
		if run.Passed() {
			return fmt.Sprintf("[green]✓[white] %s — %s", run.Timestamp, run.Selection)
		}
		return fmt.Sprintf("[red]✗[white] %s — %s", run.Timestamp, run.Selection)
	}
	for i := range runs {
		list.AddItem(listItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Run Details ")

	showDetails := func(index int) {
		run := runs[index]
		result := "[green]PASSED[white]"
		if !run.Passed() {
			result = fmt.Sprintf("[red]FAILED (exit code %d)[white]", run.ExitCode)
		}
		detailsView.SetText(fmt.Sprintf(
			"[yellow]Selection:[white] %s\n"+
				"[yellow]Browser:[white] %s\n"+
				"[yellow]Headless:[white] %v\n"+
				"[yellow]Result:[white] %s\n"+
				"[yellow]Duration:[white] %.2fs\n"+
				"[yellow]Report:[white] %s\n"+
				"[yellow]Started:[white] %s",
			run.Selection, run.Browser, run.Headless,
			result, run.DurationSeconds, run.ReportPath, run.Timestamp,
		))
	}
	showDetails(0)
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(runs) {
			showDetails(index)
		}
	})

	list.SetBorder(true).SetTitle(fmt.Sprintf(" Runs (%d) ", len(runs)))

	footer := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]↑/↓[white] select  [yellow]q[white] quit")

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(footer, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(layout, true).Run()
}

// PrintPlain writes the history as a table, for non-interactive terminals.
func (hv *HistoryViewer) PrintPlain(history *domain.RunHistory) error {
	if len(history.Runs) == 0 {
		color.Yellow("No recorded runs yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tRESULT\tSELECTION\tBROWSER\tDURATION\tREPORT")
	for i := len(history.Runs) - 1; i >= 0; i-- {
		run := history.Runs[i]
		result := "PASSED"
		if !run.Passed() {
			result = fmt.Sprintf("FAILED(%d)", run.ExitCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%s\n",
			run.Timestamp, result, run.Selection, run.Browser, run.DurationSeconds, run.ReportPath)
	}
	return w.Flush()
}
