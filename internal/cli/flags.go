package cli

import "pwl/internal/config"

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

	// clean command retention flags
	KeepReports    int
	Screenshots    string
	MaxScreenshots int
	ReportsToMatch int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		All:        f.All,
		TestFile:   f.TestFile,
		Module:     f.Module,
		Case:       f.Case,
		Browser:    f.Browser,
		Headless:   f.Headless,
		NoCleanup:  f.NoCleanup,
		NameFilter: f.NameFilter,
		TestCases:  f.TestCases,
		Plain:      f.Plain,
	}
}
