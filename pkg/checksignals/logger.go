package checksignals

// Logger provides a pluggable logging interface for check-signals operations.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Logger carries diagnostics only. Advisory findings go through a Reporter.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
