package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"pwl/internal/config"
	"pwl/internal/discovery"
	"pwl/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintRunHeader prints the pre-run banner with the run parameters.
func (f *Formatter) PrintRunHeader(rc domain.RunConfig, reportPath string) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Playwright Test Launcher                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Printf("  %s %s\n", color.WhiteString("Selection:"), rc.Selection())
	fmt.Printf("  %s %s\n", color.WhiteString("Browser:  "), rc.Browser)
	fmt.Printf("  %s %v\n", color.WhiteString("Headless: "), rc.Headless)
	fmt.Printf("  %s %s\n", color.WhiteString("Report:   "), reportPath)
	fmt.Println()
}

// PrintRunSummary prints the post-run banner with the outcome.
func (f *Formatter) PrintRunSummary(exitCode int, reportPath string, duration time.Duration) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                       Run Summary                             ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	if exitCode == 0 {
		fmt.Printf("  %s ", color.WhiteString("Result:  "))
		color.Green("PASSED")
	} else {
		fmt.Printf("  %s ", color.WhiteString("Result:  "))
		color.Red("FAILED (exit code %d)", exitCode)
	}
	fmt.Printf("  %s %.2fs\n", color.WhiteString("Duration:"), duration.Seconds())
	fmt.Printf("  %s %s\n", color.WhiteString("Report:  "), reportPath)
	fmt.Println()
}

// PrintTestList prints a list of test files, optionally with test cases.
func (f *Formatter) PrintTestList(tests []string, showTestCases bool) error {
	if !showTestCases {
		color.Green("Found %d test file(s):\n", len(tests))
		for i, test := range tests {
			relPath, err := filepath.Rel(f.config.ProjectPath, test)
			if err != nil {
				relPath = test
			}
			if i == len(tests)-1 {
				color.Cyan("└── %s", relPath)
			} else {
				color.Cyan("├── %s", relPath)
			}
		}
		return nil
	}

	// Tree view with test cases
	color.Green("Found %d test file(s) with test cases:\n", len(tests))
	for i, test := range tests {
		testCases, err := f.parser.FindTestCases(test)
		if err != nil {
			color.Red("Error reading test file %s: %v", test, err)
			continue
		}

		relPath, err := filepath.Rel(f.config.ProjectPath, test)
		if err != nil {
			relPath = test
		}

		isLastFile := i == len(tests)-1
		if isLastFile {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		if len(testCases) == 0 {
			prefix := "│   └── "
			if isLastFile {
				prefix = "    └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no test cases found)"))
			continue
		}

		for j, testCase := range testCases {
			isLastCase := j == len(testCases)-1
			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(testCase))
		}

		if i < len(tests)-1 {
			fmt.Println()
		}
	}

	return nil
}
