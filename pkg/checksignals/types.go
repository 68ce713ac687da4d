package checksignals

import "fmt"

// Severity is the level an advisory finding is reported at.
type Severity int

const (
	// SeverityInfo marks a suggestion.
	SeverityInfo Severity = iota
	// SeverityWarning marks a missing optimization.
	SeverityWarning
)

// String returns the tag printed between brackets in front of an advisory line.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Rule identifies the check that produced a finding.
type Rule string

const (
	// RuleOnPush reports components without OnPush change detection.
	RuleOnPush Rule = "onpush"
	// RuleSignals reports components without Signals usage.
	RuleSignals Rule = "signals"
)

// Finding is one advisory produced for one component file.
type Finding struct {
	Rule      Rule
	Severity  Severity
	Component string
	Path      string
}

// Message returns the advisory text without the severity tag.
func (f Finding) Message() string {
	switch f.Rule {
	case RuleOnPush:
		return fmt.Sprintf("Component %s (%s) is NOT using OnPush change detection.", f.Component, f.Path)
	case RuleSignals:
		return fmt.Sprintf("Component %s (%s) does not appear to use Signals. Consider migrating state management to Signals.", f.Component, f.Path)
	default:
		return fmt.Sprintf("Component %s (%s): %s", f.Component, f.Path, f.Rule)
	}
}

// String returns the full advisory line, e.g. "[WARNING] Component Foo (...) ...".
func (f Finding) String() string {
	return "[" + f.Severity.String() + "] " + f.Message()
}

// ScanResult contains the results of scanning a directory.
type ScanResult struct {
	// FilesVisited counts every regular file the walker reported.
	FilesVisited int
	// FilesInspected counts files whose path matched the extension.
	FilesInspected int
	// Components counts inspected files that carry the component marker.
	Components int
	// Findings holds every advisory in the order it was reported.
	Findings []Finding
	// Errors holds per-file errors recorded when the scan continues past failures.
	Errors []error
	// Complete is set once the walk has reached every entry. It stays false
	// when an error aborted the scan, even if other errors were recorded.
	Complete bool
}

// Reporter receives advisory findings as they are produced.
// Implementations must be safe for concurrent use by multiple goroutines.
type Reporter interface {
	// Report emits one advisory finding.
	Report(f Finding)

	// Complete emits the completion line. Called once, after the walk.
	Complete()
}

// FileScanner defines the interface for discovering and inspecting component files.
type FileScanner interface {
	// ScanDirectory recursively scans a directory, reporting findings as they are
	// produced, and returns everything it found.
	ScanDirectory(sourcePath string) (ScanResult, error)
}
