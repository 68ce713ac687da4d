package report

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled determines whether advisories written to f should be colored.
//
// Returns false if:
//   - disabled is true (the --no-color flag)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - f is not a terminal (piped or redirected output)
func ColorEnabled(f *os.File, disabled bool) bool {
	if disabled {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
