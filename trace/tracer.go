package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tracer records object lifecycle events for debugging reference
// counting problems.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer. Filters are filepath.Match
// patterns applied to kind names; no filters means trace everything.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a kind name matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

// Object logs a lifecycle event (create, addref, release, destroy) for
// a single object. The count is the reference count after the event.
func (t *Tracer) Object(event, kind string, id uint64, refs uint32) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %s %s#%d refs=%d\n",
		strings.ToUpper(event), kind, id, refs)
}

// Object logs a lifecycle event using the global tracer
func Object(event, kind string, id uint64, refs uint32) {
	if globalTracer != nil {
		globalTracer.Object(event, kind, id, refs)
	}
}
