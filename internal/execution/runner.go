package execution

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"pwl/internal/config"
)

// ExitCodeError carries a runner exit code up through cobra to main,
// where it becomes the launcher's own exit status.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("test run failed with exit code %d", e.Code)
}

// Runner executes a single composed runner invocation
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the runner exactly once, synchronously. Stdout and stderr are
// inherited so the runner's output streams live. Returns the runner's exit
// code and the wall-clock duration; err is only set when the process could
// not be started at all.
func (r *Runner) Run(args []string) (int, time.Duration, error) {
	cmd := exec.Command(r.config.PytestBin, args...)
	cmd.Dir = r.config.ProjectPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		return 0, elapsed, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), elapsed, nil
	}

	// Binary missing or not executable: still a failed run, but worth a
	// distinct message since the runner never produced output.
	return 1, elapsed, fmt.Errorf("failed to start %s: %w", r.config.PytestBin, err)
}
