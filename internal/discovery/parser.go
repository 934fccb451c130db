package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Parser parses test files to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Top-level test functions, per the runner's collection convention:
//   def test_successful_submission(contact_us_page):
// Indented defs are methods or helpers and are not collected directly.
var testFuncPattern = regexp.MustCompile(`(?m)^def\s+(test_\w+)\s*\(`)

// Test methods inside Test* classes, collected by the runner as well:
//   class TestLogin:
//       def test_valid_credentials(self):
var testMethodPattern = regexp.MustCompile(`(?m)^\s+def\s+(test_\w+)\s*\(`)

// FindTestCases finds all test cases in a test file
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	fileContent := string(content)
	testCasesMap := make(map[string]bool) // Use map to avoid duplicates

	for _, match := range testFuncPattern.FindAllStringSubmatch(fileContent, -1) {
		if len(match) > 1 {
			testCasesMap[match[1]] = true
		}
	}

	// Only count indented defs when the file declares a Test class,
	// otherwise nested helpers would be reported as cases.
	if regexp.MustCompile(`(?m)^class\s+Test\w*`).MatchString(fileContent) {
		for _, match := range testMethodPattern.FindAllStringSubmatch(fileContent, -1) {
			if len(match) > 1 {
				testCasesMap[match[1]] = true
			}
		}
	}

	// Convert map to sorted slice for consistent output
	var testCases []string
	for testCase := range testCasesMap {
		testCases = append(testCases, testCase)
	}
	sort.Strings(testCases)

	return testCases, nil
}
