package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pwl/internal/config"
)

// TimestampLayout is the second-resolution layout used in report file names
const TimestampLayout = "2006-01-02_15-04-05"

// PathGenerator produces timestamped report paths under the reports directory
type PathGenerator struct {
	config *config.Config
	now    func() time.Time
}

// NewPathGenerator creates a new PathGenerator
func NewPathGenerator(cfg *config.Config) *PathGenerator {
	return &PathGenerator{config: cfg, now: time.Now}
}

// Generate returns the report path for a run starting now and makes sure the
// reports directory exists. The timestamp is captured exactly once; callers
// hold on to the returned path for the rest of the run.
func (g *PathGenerator) Generate() (string, error) {
	dir := g.config.GetReportsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	name := fmt.Sprintf("%s%s.html", g.config.ReportPrefix, g.now().Format(TimestampLayout))
	return filepath.Join(dir, name), nil
}
