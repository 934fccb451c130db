package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pwl/internal/config"
)

func setupConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

// touch creates path and pushes its mtime back by age.
func touch(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// touchDir creates a directory and pushes its mtime back by age.
func touchDir(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func countEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	return len(entries)
}

func TestCleaner_CleanReports(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	reportsDir := cfg.GetReportsDir()

	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("playwright_report_2025-01-0%d_10-00-00.html", i+1)
		touch(t, filepath.Join(reportsDir, name), time.Duration(8-i)*time.Hour)
	}

	cleaner.CleanReports(5)

	if got := countEntries(t, reportsDir); got != 5 {
		t.Errorf("expected 5 reports kept, got %d", got)
	}

	// The newest report must survive
	newest := filepath.Join(reportsDir, "playwright_report_2025-01-08_10-00-00.html")
	if _, err := os.Stat(newest); err != nil {
		t.Errorf("newest report was deleted: %v", err)
	}
}

func TestCleaner_CleanReports_MissingDir(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)

	// No reports directory at all: nothing to do, no panic
	cleaner.CleanReports(5)
}

func TestCleaner_CleanLogs(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	logsDir := cfg.GetLogsDir()

	for i := 0; i < 7; i++ {
		name := fmt.Sprintf("test_execution_%d.log", i)
		touch(t, filepath.Join(logsDir, name), time.Duration(7-i)*time.Hour)
	}
	// Unrelated file is never touched
	touch(t, filepath.Join(logsDir, "other.log"), 48*time.Hour)

	cleaner.CleanLogs(3)

	entries, err := os.ReadDir(logsDir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("expected 3 execution logs plus the unrelated file, got %d entries", len(entries))
	}
	if _, err := os.Stat(filepath.Join(logsDir, "other.log")); err != nil {
		t.Errorf("unrelated log file was deleted: %v", err)
	}
}

func TestCleaner_CleanScreenshots_MatchReports(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	reportsDir := cfg.GetReportsDir()
	screenshotsDir := cfg.GetScreenshotsDir()

	timestamps := []string{
		"2025-01-05_10-00-00",
		"2025-01-04_10-00-00",
		"2025-01-03_10-00-00",
	}
	for i, ts := range timestamps {
		touch(t, filepath.Join(reportsDir, "playwright_report_"+ts+".html"), time.Duration(i+1)*time.Hour)
	}

	// Folders matching the two newest reports, plus one stale folder
	touchDir(t, filepath.Join(screenshotsDir, "screenshot_2025-01-05_10-00-00"), time.Hour)
	touchDir(t, filepath.Join(screenshotsDir, "screenshot_2025-01-04_10-00-00"), 2*time.Hour)
	touchDir(t, filepath.Join(screenshotsDir, "screenshot_2024-12-01_10-00-00"), 72*time.Hour)

	if err := cleaner.CleanScreenshots(Options{Strategy: StrategyMatchReports, ReportsToMatch: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := countEntries(t, screenshotsDir); got != 2 {
		t.Errorf("expected 2 matching folders kept, got %d", got)
	}
	if _, err := os.Stat(filepath.Join(screenshotsDir, "screenshot_2024-12-01_10-00-00")); err == nil {
		t.Error("stale screenshot folder should have been deleted")
	}
}

func TestCleaner_CleanScreenshots_LastExecution(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	screenshotsDir := cfg.GetScreenshotsDir()

	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("screenshot_2025-01-0%d_10-00-00", i+1)
		touchDir(t, filepath.Join(screenshotsDir, name), time.Duration(6-i)*time.Hour)
	}

	if err := cleaner.CleanScreenshots(Options{Strategy: StrategyLastExecution, MaxScreenshots: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := countEntries(t, screenshotsDir); got != 2 {
		t.Errorf("expected 2 folders kept, got %d", got)
	}
	if _, err := os.Stat(filepath.Join(screenshotsDir, "screenshot_2025-01-06_10-00-00")); err != nil {
		t.Errorf("newest folder was deleted: %v", err)
	}
}

func TestCleaner_CleanScreenshots_UnknownStrategy(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	touchDir(t, cfg.GetScreenshotsDir(), time.Hour)

	err := cleaner.CleanScreenshots(Options{Strategy: "bogus"})
	if err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestCleaner_Run(t *testing.T) {
	cfg := setupConfig(t)
	cleaner := NewCleaner(cfg)
	reportsDir := cfg.GetReportsDir()

	for i := 0; i < 7; i++ {
		name := fmt.Sprintf("playwright_report_2025-02-0%d_10-00-00.html", i+1)
		touch(t, filepath.Join(reportsDir, name), time.Duration(7-i)*time.Hour)
	}

	opts := DefaultOptions(cfg)
	if err := cleaner.Run(opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := countEntries(t, reportsDir); got != cfg.KeepArtifacts {
		t.Errorf("expected %d reports kept, got %d", cfg.KeepArtifacts, got)
	}
}
