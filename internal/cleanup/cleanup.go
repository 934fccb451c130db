package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"pwl/internal/config"
	"pwl/internal/ui"
)

// Screenshot cleanup strategies
const (
	StrategyMatchReports  = "match_reports"
	StrategyLastExecution = "last_execution"
)

// Options control what the cleaner keeps
type Options struct {
	KeepReports    int    // Newest HTML reports to keep
	Strategy       string // Screenshot strategy: match_reports or last_execution
	MaxScreenshots int    // Folders to keep for last_execution
	ReportsToMatch int    // Reports to match against for match_reports
}

// DefaultOptions returns the retention defaults from the configuration.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		KeepReports:    cfg.KeepArtifacts,
		Strategy:       StrategyMatchReports,
		MaxScreenshots: cfg.KeepArtifacts,
		ReportsToMatch: cfg.KeepArtifacts,
	}
}

// Cleaner purges stale reports, logs and screenshot folders
type Cleaner struct {
	config *config.Config
}

// NewCleaner creates a new Cleaner
func NewCleaner(cfg *config.Config) *Cleaner {
	return &Cleaner{config: cfg}
}

// Run performs the full cleanup pass: reports, logs, then screenshots.
// Individual delete failures are reported and skipped; only an unknown
// screenshot strategy fails the pass.
func (c *Cleaner) Run(opts Options) error {
	c.CleanReports(opts.KeepReports)
	c.CleanLogs(opts.KeepReports)
	return c.CleanScreenshots(opts)
}

// CleanReports keeps the N newest HTML reports and deletes the rest.
func (c *Cleaner) CleanReports(keep int) {
	dir := c.config.GetReportsDir()
	files, ok := listByModTime(dir, "*.html")
	if !ok {
		return
	}
	if len(files) <= keep {
		return
	}
	deletePaths(files[keep:], "Cleaning reports", os.Remove)
}

// CleanLogs keeps the N newest execution logs and deletes the rest.
func (c *Cleaner) CleanLogs(keep int) {
	dir := c.config.GetLogsDir()
	files, ok := listByModTime(dir, "test_execution_*.log")
	if !ok {
		return
	}
	if len(files) <= keep {
		return
	}
	deletePaths(files[keep:], "Cleaning logs", os.Remove)
}

// CleanScreenshots removes screenshot folders according to the strategy.
func (c *Cleaner) CleanScreenshots(opts Options) error {
	dir := c.config.GetScreenshotsDir()
	if _, err := os.Stat(dir); err != nil {
		// Nothing to clean
		return nil
	}

	switch opts.Strategy {
	case StrategyMatchReports:
		c.cleanScreenshotsMatchReports(opts.ReportsToMatch)
		return nil
	case StrategyLastExecution:
		c.cleanScreenshotsLastExecution(opts.MaxScreenshots)
		return nil
	default:
		return fmt.Errorf("unknown screenshot cleanup strategy: %s", opts.Strategy)
	}
}

// cleanScreenshotsMatchReports keeps folders whose name carries the timestamp
// of one of the N newest reports and deletes everything else.
func (c *Cleaner) cleanScreenshotsMatchReports(reportsToMatch int) {
	reports, ok := listByModTime(c.config.GetReportsDir(), "*.html")
	if !ok {
		reports = nil
	}
	if len(reports) > reportsToMatch {
		reports = reports[:reportsToMatch]
	}

	var timestamps []string
	for _, report := range reports {
		name := strings.TrimSuffix(filepath.Base(report), ".html")
		timestamps = append(timestamps, strings.TrimPrefix(name, c.config.ReportPrefix))
	}

	folders := listDirsByModTime(c.config.GetScreenshotsDir())
	var stale []string
	for _, folder := range folders {
		base := filepath.Base(folder)
		matched := false
		for _, ts := range timestamps {
			if strings.Contains(base, ts) {
				matched = true
				break
			}
		}
		if !matched {
			stale = append(stale, folder)
		}
	}
	deletePaths(stale, "Cleaning screenshots", os.RemoveAll)
}

// cleanScreenshotsLastExecution keeps only the M newest screenshot folders.
func (c *Cleaner) cleanScreenshotsLastExecution(keep int) {
	folders := listDirsByModTime(c.config.GetScreenshotsDir())
	if len(folders) <= keep {
		return
	}
	deletePaths(folders[keep:], "Cleaning screenshots", os.RemoveAll)
}

// deletePaths removes each path with remove, showing progress for larger batches.
func deletePaths(paths []string, description string, remove func(string) error) {
	if len(paths) == 0 {
		return
	}

	var bar *ui.ProgressBar
	if len(paths) > 5 {
		bar = ui.NewProgressBar(len(paths), description)
	}
	for i, p := range paths {
		if err := remove(p); err != nil {
			color.Red("Failed to delete %s: %v", p, err)
		}
		if bar != nil {
			bar.Update(i + 1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
}

// listByModTime returns files in dir matching pattern, newest first.
// ok is false when the directory does not exist.
func listByModTime(dir, pattern string) ([]string, bool) {
	if _, err := os.Stat(dir); err != nil {
		return nil, false
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, false
	}
	sortByModTime(matches)
	return matches, true
}

// listDirsByModTime returns the subdirectories of dir, newest first.
func listDirsByModTime(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	sortByModTime(dirs)
	return dirs
}

func sortByModTime(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		fi, errI := os.Stat(paths[i])
		fj, errJ := os.Stat(paths[j])
		if errI != nil || errJ != nil {
			return paths[i] < paths[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})
}
