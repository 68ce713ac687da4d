package checksignals

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// Advisory findings never change the exit code.
const (
	ExitSuccess      = 0  // Scan completed, regardless of how many advisories were reported
	ExitGeneralError = 1  // Filesystem error or other unclassified failure
	ExitUsageError   = 2  // CLI usage error (unknown flag, too many args)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or values
)

const (
	// DefaultRoot is the directory scanned when nothing overrides it.
	// It is resolved relative to the working directory.
	DefaultRoot = "src/app"

	// DefaultExtension is the suffix a path must end with to be inspected.
	DefaultExtension = ".ts"

	// DefaultComponentMarker marks a file as declaring a UI component.
	DefaultComponentMarker = "@Component"

	// DefaultNamePattern captures the display name of a component.
	// The first capture group is used. The separator class is JavaScript's
	// \s, which unlike RE2's also covers \v, Unicode spaces and the BOM.
	DefaultNamePattern = `class[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+(\w+)`

	// PlaceholderComponentName is used when no class declaration is found.
	PlaceholderComponentName = "UnknownComponent"

	// DefaultOnPushMarker is the literal that counts as OnPush being enabled.
	DefaultOnPushMarker = "ChangeDetectionStrategy.OnPush"

	// CompletionMessage is printed once after the walk finishes.
	CompletionMessage = "Custom lint check completed."

	// RootEnvVar overrides the scanned root when no positional argument is given.
	RootEnvVar = "CHECK_SIGNALS_ROOT"
)

// DefaultSignalAPIs returns the call-like substrings treated as Signals usage.
// A new slice is returned on every call so callers may modify it.
func DefaultSignalAPIs() []string {
	return []string{"signal(", "computed(", "effect("}
}
