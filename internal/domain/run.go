package domain

import "time"

// SelectionMode describes how tests were selected for a run
type SelectionMode string

const (
	// SelectAll runs the entire test directory
	SelectAll SelectionMode = "all"
	// SelectFile runs a single test file
	SelectFile SelectionMode = "file"
	// SelectModule runs the conventionally-named file for a module
	SelectModule SelectionMode = "module"
)

// RunConfig holds the effective parameters of a single launcher run
type RunConfig struct {
	Mode     SelectionMode // Active selection mode
	TestFile string        // File name under the test directory (Mode == SelectFile)
	Module   string        // Module name (Mode == SelectModule)
	Case     string        // Optional single case within the module file
	Browser  string        // Browser name passed to the runner
	Headless bool          // Whether the runner should run headless
}

// Selection returns a human-readable description of what the run selects.
func (rc RunConfig) Selection() string {
	switch rc.Mode {
	case SelectFile:
		return "file " + rc.TestFile
	case SelectModule:
		if rc.Case != "" {
			return "module " + rc.Module + ", case " + rc.Case
		}
		return "module " + rc.Module
	default:
		return "all tests"
	}
}

// RunRecord is one entry in the persisted run history
type RunRecord struct {
	Selection       string  `json:"selection"`
	Browser         string  `json:"browser"`
	Headless        bool    `json:"headless"`
	ReportPath      string  `json:"report_path"`
	ExitCode        int     `json:"exit_code"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Passed reports whether the recorded run succeeded.
func (r RunRecord) Passed() bool {
	return r.ExitCode == 0
}

// RunHistory is the complete persisted history structure
type RunHistory struct {
	Runs []RunRecord `json:"runs"`
}

// NewRunRecord builds a record from the outcome of a finished run.
func NewRunRecord(rc RunConfig, reportPath string, exitCode int, duration time.Duration) RunRecord {
	return RunRecord{
		Selection:       rc.Selection(),
		Browser:         rc.Browser,
		Headless:        rc.Headless,
		ReportPath:      reportPath,
		ExitCode:        exitCode,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
