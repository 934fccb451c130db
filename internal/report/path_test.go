package report

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"pwl/internal/config"
)

func TestPathGenerator_Generate(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.New()
	cfg.ProjectPath = tmpDir

	gen := NewPathGenerator(cfg)

	t.Run("path matches the report naming convention", func(t *testing.T) {
		path, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pattern := regexp.MustCompile(`playwright_report_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.html$`)
		if !pattern.MatchString(path) {
			t.Errorf("path %s does not match the report naming convention", path)
		}
		if filepath.Dir(path) != cfg.GetReportsDir() {
			t.Errorf("expected report under %s, got %s", cfg.GetReportsDir(), path)
		}
	})

	t.Run("creates the reports directory", func(t *testing.T) {
		if _, err := gen.Generate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(cfg.GetReportsDir())
		if err != nil {
			t.Fatalf("reports directory missing: %v", err)
		}
		if !info.IsDir() {
			t.Error("reports path is not a directory")
		}
	})

	t.Run("create is idempotent", func(t *testing.T) {
		if _, err := gen.Generate(); err != nil {
			t.Fatalf("first call: %v", err)
		}
		if _, err := gen.Generate(); err != nil {
			t.Fatalf("second call: %v", err)
		}
	})

	t.Run("timestamp has second resolution", func(t *testing.T) {
		gen := NewPathGenerator(cfg)
		gen.now = func() time.Time {
			return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		}

		path, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := "playwright_report_2025-01-02_03-04-05.html"
		if filepath.Base(path) != expected {
			t.Errorf("expected %s, got %s", expected, filepath.Base(path))
		}
	})
}
