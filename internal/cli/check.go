package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/omatheusmesmo/checksignals/internal/files/scanner"
	"github.com/omatheusmesmo/checksignals/internal/inspect"
	"github.com/omatheusmesmo/checksignals/internal/logging"
	"github.com/omatheusmesmo/checksignals/internal/report"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

type checkFlagValues struct {
	configPath string
	extension  string
	keepGoing  bool
	noColor    bool
}

var checkFlags checkFlagValues

func resetCheckFlags() {
	checkFlags = checkFlagValues{}
}

func init() {
	rootCmd.Flags().StringVar(&checkFlags.configPath, "config", "",
		"Path to a YAML config file (default: ./check-signals.yaml when present)")
	rootCmd.Flags().StringVar(&checkFlags.extension, "extension", "",
		"Only inspect paths ending with this suffix (default: .ts)")
	rootCmd.Flags().BoolVar(&checkFlags.keepGoing, "keep-going", false,
		"Record unreadable files and directories, finish the walk, then fail")
	rootCmd.Flags().BoolVar(&checkFlags.noColor, "no-color", false,
		"Disable colored severity tags")

	_ = rootCmd.RegisterFlagCompletionFunc("extension", completeExtensions)
}

// runCheck scans the resolved root, prints findings as they are found and
// prints the completion line once the walk is done.
func runCheck(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	settings, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}
	logSettingsVerbose(logger, settings)

	inspector, err := inspect.New(settings.Rules)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	colored := report.ColorEnabled(asFile(stdout), checkFlags.noColor) ||
		report.ColorEnabled(asFile(stderr), checkFlags.noColor)
	reporter := report.NewConsoleReporter(stdout, stderr, colored)

	s := scanner.NewScanner(inspector, reporter).
		WithLogger(logger).
		WithOptions(scanner.Options{KeepGoing: settings.KeepGoing})

	result, err := s.ScanDirectory(settings.Root)
	return finishScan(reporter, settings.Root, result, err)
}

// finishScan prints the completion line when the walk reached its end and
// turns the scan outcome into the command's error.
func finishScan(reporter checksignals.Reporter, root string, result checksignals.ScanResult, err error) error {
	if err != nil && !result.Complete {
		return fmt.Errorf("scan %s: %w", root, err)
	}

	reporter.Complete()

	if err != nil {
		return fmt.Errorf("scan %s finished with %d error(s): %w", root, len(result.Errors), err)
	}
	return nil
}

// asFile returns w as an *os.File when it is one, for terminal detection.
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
