package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the directory scanned for test files, relative to the project
	DefaultTestPath = "tests/test_cases"
	// DefaultBrowser is the browser passed to the runner when none is requested
	DefaultBrowser = "chromium"
	// DefaultPytestBin is the runner binary looked up on PATH
	DefaultPytestBin = "pytest"
	// DefaultReportsDir holds generated HTML reports
	DefaultReportsDir = "reports"
	// DefaultLogsDir holds runner execution logs
	DefaultLogsDir = "logs"
	// DefaultScreenshotsDir holds per-run screenshot folders
	DefaultScreenshotsDir = "screenshots"
	// DefaultReportPrefix prefixes every generated report file name
	DefaultReportPrefix = "playwright_report_"
	// DefaultScreenshotPrefix prefixes every screenshot folder name
	DefaultScreenshotPrefix = "screenshot_"
	// DefaultKeepArtifacts is how many reports/logs cleanup keeps by default
	DefaultKeepArtifacts = 5
	// DefaultHistoryFile is the run history file name
	DefaultHistoryFile = "run-history.json"
	// DefaultHistoryDir is the directory for the run history file
	DefaultHistoryDir = "storage"
)

// DefaultSkipDirs are directories ignored when scanning for test files
var DefaultSkipDirs = []string{
	"__pycache__",
	".pytest_cache",
	"test_data",
	"node_modules",
	"venv",
	".venv",
}
