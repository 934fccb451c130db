package execution

import (
	"fmt"
	"path/filepath"

	"pwl/internal/config"
	"pwl/internal/domain"
)

// Composer builds the runner invocation for a run configuration
type Composer struct {
	config *config.Config
}

// NewComposer creates a new Composer
func NewComposer(cfg *config.Config) *Composer {
	return &Composer{config: cfg}
}

// Selector returns the pytest selector argument for the run configuration.
// Selection precedence is all > file > module; first match wins.
func (c *Composer) Selector(rc domain.RunConfig) string {
	testDir := c.config.GetTestPath()
	switch rc.Mode {
	case domain.SelectFile:
		return filepath.Join(testDir, rc.TestFile)
	case domain.SelectModule:
		file := filepath.Join(testDir, fmt.Sprintf("test_%s.py", rc.Module))
		if rc.Case != "" {
			// pytest node id: path::case
			return file + "::" + rc.Case
		}
		return file
	default:
		return testDir
	}
}

// Compose returns the full argument list for one runner invocation.
// The report path must already be generated; composition is deterministic.
func (c *Composer) Compose(rc domain.RunConfig, reportPath string) []string {
	args := []string{c.Selector(rc)}

	args = append(args, fmt.Sprintf("--browser-name=%s", rc.Browser))
	if rc.Headless {
		// The runner's conftest parses a true/false string, defaulting false
		args = append(args, "--headless=true")
	}
	args = append(args, fmt.Sprintf("--html=%s", reportPath), "--self-contained-html")

	return args
}
