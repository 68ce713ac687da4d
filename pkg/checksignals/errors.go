package checksignals

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := scanner.ScanDirectory(root)
//	if errors.Is(err, checksignals.ErrSourceNotFound) {
//	    // The root directory is missing or not a directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates the root directory could not be opened.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrWalkFailed indicates a directory entry could not be listed or stat'ed.
	ErrWalkFailed = errors.New("walk failed")

	// ErrReadFailed indicates a candidate file could not be read.
	ErrReadFailed = errors.New("read failed")
)

// usageErrorPatterns are prefixes of errors cobra returns for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg(s)",
	"invalid argument",
	"flag needs an argument",
	"required flag",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidConfig) {
		return ExitConfigError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
