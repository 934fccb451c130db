package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Runner settings
	PytestBin string
	Browser   string

	// Artifact directories
	ReportsDir     string
	LogsDir        string
	ScreenshotsDir string

	// Naming conventions
	ReportPrefix     string
	ScreenshotPrefix string

	// Cleanup retention
	KeepArtifacts int

	// Run history output
	HistoryFile string
	HistoryDir  string

	// Paths to ignore when scanning
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	All        bool
	TestFile   string
	Module     string
	Case       string
	Browser    string
	Headless   bool
	NoCleanup  bool
	NameFilter string
	TestCases  bool
	Plain      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:      DefaultProjectPath,
		TestPath:         DefaultTestPath,
		PytestBin:        DefaultPytestBin,
		Browser:          DefaultBrowser,
		ReportsDir:       DefaultReportsDir,
		LogsDir:          DefaultLogsDir,
		ScreenshotsDir:   DefaultScreenshotsDir,
		ReportPrefix:     DefaultReportPrefix,
		ScreenshotPrefix: DefaultScreenshotPrefix,
		KeepArtifacts:    DefaultKeepArtifacts,
		HistoryFile:      DefaultHistoryFile,
		HistoryDir:       DefaultHistoryDir,
	}
	// Copy default skip dirs so callers can append safely
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	cfg.applyEnv()
	return cfg
}

// applyEnv loads .env from the project directory and applies PWL_* overrides.
// A missing .env file is fine; plain environment variables still apply.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		_ = err
	}

	if v := os.Getenv("PWL_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("PWL_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("PWL_PYTEST_BIN"); v != "" {
		c.PytestBin = v
	}
	if v := os.Getenv("PWL_BROWSER"); v != "" {
		c.Browser = v
	}
	if v := os.Getenv("PWL_REPORTS_DIR"); v != "" {
		c.ReportsDir = v
	}
	if v := os.Getenv("PWL_SCREENSHOTS_DIR"); v != "" {
		c.ScreenshotsDir = v
	}
	if v := os.Getenv("PWL_LOGS_DIR"); v != "" {
		c.LogsDir = v
	}
}

// GetBrowser returns the browser name, using the flag if provided
func (c *Config) GetBrowser() string {
	if c.Flags.Browser != "" {
		return c.Flags.Browser
	}
	return c.Browser
}

// GetTestPath returns the absolute-or-project-relative test directory
func (c *Config) GetTestPath() string {
	if filepath.IsAbs(c.TestPath) {
		return c.TestPath
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetReportsDir returns the reports directory under the project
func (c *Config) GetReportsDir() string {
	if filepath.IsAbs(c.ReportsDir) {
		return c.ReportsDir
	}
	return filepath.Join(c.ProjectPath, c.ReportsDir)
}

// GetLogsDir returns the logs directory under the project
func (c *Config) GetLogsDir() string {
	if filepath.IsAbs(c.LogsDir) {
		return c.LogsDir
	}
	return filepath.Join(c.ProjectPath, c.LogsDir)
}

// GetScreenshotsDir returns the screenshots directory under the project
func (c *Config) GetScreenshotsDir() string {
	if filepath.IsAbs(c.ScreenshotsDir) {
		return c.ScreenshotsDir
	}
	return filepath.Join(c.ProjectPath, c.ScreenshotsDir)
}

// GetHistoryPath returns the full path to the run history file.
// Resolves to an absolute path so run and history always read/write the same file regardless of cwd.
func (c *Config) GetHistoryPath() string {
	p := filepath.Join(c.ProjectPath, c.HistoryDir, c.HistoryFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
