package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// ConsoleReporter writes advisory lines as they are reported.
// Safe for concurrent use by multiple goroutines.
type ConsoleReporter struct {
	stdout  io.Writer
	stderr  io.Writer
	colored bool
	mu      sync.Mutex
}

// NewConsoleReporter creates a reporter writing informational advisories and
// the completion line to stdout and warnings to stderr.
func NewConsoleReporter(stdout, stderr io.Writer, colored bool) *ConsoleReporter {
	return &ConsoleReporter{
		stdout:  stdout,
		stderr:  stderr,
		colored: colored,
	}
}

// Report writes one advisory line.
func (r *ConsoleReporter) Report(f checksignals.Finding) {
	w := r.stdout
	if f.Severity == checksignals.SeverityWarning {
		w = r.stderr
	}

	tag := "[" + f.Severity.String() + "]"
	if r.colored {
		tag = tagStyle(w, f.Severity).Render(tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(w, "%s %s\n", tag, f.Message())
}

// Complete writes the completion line.
func (r *ConsoleReporter) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.stdout, checksignals.CompletionMessage)
}

var _ checksignals.Reporter = (*ConsoleReporter)(nil)
