// Package files groups the packages that find and read source files.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Walks a source tree and feeds matching files to the component inspector
//
// # Usage
//
//	import (
//	    "github.com/omatheusmesmo/checksignals/internal/files/scanner"
//	    "github.com/omatheusmesmo/checksignals/internal/inspect"
//	    "github.com/omatheusmesmo/checksignals/internal/report"
//	)
//
//	insp, err := inspect.New(inspect.DefaultRules())
//	rep := report.NewConsoleReporter(os.Stdout, os.Stderr, false)
//	result, err := scanner.NewScanner(insp, rep).ScanDirectory("src/app")
package files
