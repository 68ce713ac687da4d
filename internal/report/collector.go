package report

import (
	"sync"

	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// Collector keeps reported findings in memory.
// Safe for concurrent use by multiple goroutines.
type Collector struct {
	mu        sync.Mutex
	findings  []checksignals.Finding
	completed int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records f.
func (c *Collector) Report(f checksignals.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, f)
}

// Complete counts completion calls.
func (c *Collector) Complete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed++
}

// Findings returns a copy of everything reported so far.
func (c *Collector) Findings() []checksignals.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]checksignals.Finding(nil), c.findings...)
}

// Completed returns how many times Complete was called.
func (c *Collector) Completed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

var _ checksignals.Reporter = (*Collector)(nil)
