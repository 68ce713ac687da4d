package scanner

import (
	"errors"
	"fmt"

	"github.com/omatheusmesmo/checksignals/internal/files/filesystem"
	"github.com/omatheusmesmo/checksignals/internal/inspect"
	"github.com/omatheusmesmo/checksignals/internal/logging"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// Options tunes a Scanner.
type Options struct {
	// KeepGoing records walk and read errors in ScanResult.Errors and carries
	// on instead of aborting on the first one.
	KeepGoing bool
}

// Scanner discovers component files in a directory tree and inspects them.
// A Scanner runs each scan synchronously on the calling goroutine.
type Scanner struct {
	inspector  *inspect.Inspector
	fsProvider filesystem.FileSystemProvider
	reporter   checksignals.Reporter
	logger     checksignals.Logger
	opts       Options
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if inspector or reporter is nil.
func NewScanner(inspector *inspect.Inspector, reporter checksignals.Reporter) *Scanner {
	return NewScannerWithFS(inspector, reporter, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if inspector, reporter or fsProvider is nil.
func NewScannerWithFS(inspector *inspect.Inspector, reporter checksignals.Reporter, fsProvider filesystem.FileSystemProvider) *Scanner {
	if inspector == nil {
		panic("inspector cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		inspector:  inspector,
		fsProvider: fsProvider,
		reporter:   reporter,
		logger:     logging.NewNullLogger(),
	}
}

// WithLogger sets the diagnostics logger. A nil logger restores the no-op logger.
func (s *Scanner) WithLogger(logger checksignals.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	s.logger = logger
	return s
}

// WithOptions sets scan options.
func (s *Scanner) WithOptions(opts Options) *Scanner {
	s.opts = opts
	return s
}

// ScanDirectory recursively scans a directory, reporting every finding as
// soon as its file is inspected.
//
// Without KeepGoing the first walk or read error aborts the scan; findings
// reported before the failure stay reported and the partial result is
// returned alongside the error. With KeepGoing those errors are collected in
// ScanResult.Errors and returned joined once the walk is complete. Errors that
// cannot be recorded, such as a recovered panic, still abort the walk and leave
// ScanResult.Complete unset.
// The completion line is not the scanner's business; callers emit it.
func (s *Scanner) ScanDirectory(sourcePath string) (checksignals.ScanResult, error) {
	var result checksignals.ScanResult

	info, err := s.fsProvider.Stat(sourcePath)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %v", checksignals.ErrSourceNotFound, sourcePath, err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%w: %s is not a directory", checksignals.ErrSourceNotFound, sourcePath)
	}

	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return result, fmt.Errorf("%w: %v", checksignals.ErrSourceNotFound, err)
	}

	s.logger.Verbose("Scanning %s for *%s files", dir.Path(), s.inspector.Rules().Extension)

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return s.fail(&result, fmt.Errorf("%w: %w", checksignals.ErrWalkFailed, err))
		}

		if file.Info().IsDir() {
			return nil
		}
		result.FilesVisited++

		path := file.Path()
		if !s.inspector.Matches(path) {
			s.logger.Verbose("Skipping %s", path)
			return nil
		}

		return s.processFile(&result, file)
	})
	if err != nil {
		return result, err
	}
	result.Complete = true

	s.logger.Verbose("Visited %d files, inspected %d, found %d components, reported %d findings",
		result.FilesVisited, result.FilesInspected, result.Components, len(result.Findings))

	if len(result.Errors) > 0 {
		return result, errors.Join(result.Errors...)
	}
	return result, nil
}

// processFile reads a candidate file, inspects it and reports its findings.
func (s *Scanner) processFile(result *checksignals.ScanResult, file filesystem.File) error {
	path := file.Path()

	content, err := file.ReadContent()
	if err != nil {
		return s.fail(result, fmt.Errorf("%w: %s: %w", checksignals.ErrReadFailed, path, err))
	}
	result.FilesInspected++

	inspection := s.inspector.Inspect(path, content)
	if !inspection.IsComponent {
		s.logger.Verbose("Inspected %s: not a component", path)
		return nil
	}
	result.Components++
	s.logger.Verbose("Inspected %s: component %s (onpush=%t, signals=%t)",
		path, inspection.Name, inspection.UsesOnPush, inspection.UsesSignals)

	for _, f := range inspection.Findings {
		s.reporter.Report(f)
		result.Findings = append(result.Findings, f)
	}
	return nil
}

// fail either aborts the walk with err or records it and lets the walk continue.
func (s *Scanner) fail(result *checksignals.ScanResult, err error) error {
	if !s.opts.KeepGoing {
		return err
	}
	s.logger.Error("%v", err)
	result.Errors = append(result.Errors, err)
	return nil
}

// Verify Scanner implements the interface at compile time
var _ checksignals.FileScanner = (*Scanner)(nil)
