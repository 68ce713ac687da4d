package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

var rootCmd = &cobra.Command{
	Use:   "check-signals [root]",
	Short: "Flag Angular components that skip OnPush or Signals",
	Long: `check-signals walks a source tree (default: src/app) and inspects every .ts file.

For each file that declares a component (contains @Component) it reports:
  [WARNING]  when ChangeDetectionStrategy.OnPush is not used
  [INFO]     when none of signal(, computed(, effect( appear

Matching is textual: nothing is parsed, so comments and strings count.
Findings are advisory and never change the exit code.

Configuration precedence (highest first):
  1. [root] argument and flags
  2. $` + checksignals.RootEnvVar + ` (also read from .env)
  3. check-signals.yaml in the working directory, or --config
  4. built-in defaults

Exit Codes:
  0  - Scan completed (with or without findings)
  1  - Filesystem error (missing root, unreadable file or directory)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeRootPath,
	SilenceUsage:      true,
	RunE:              runCheck,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
