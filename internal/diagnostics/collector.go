package diagnostics

import "sync"

// Collector is an append-only diagnostic sink. Appends are safe under
// concurrent use so a host may compose independent types in parallel.
type Collector struct {
	mu   sync.Mutex
	list []*DiagnosticError
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic. Nil diagnostics are ignored.
func (c *Collector) Add(err *DiagnosticError) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.list = append(c.list, err)
	c.mu.Unlock()
}

// All returns a snapshot of the collected diagnostics in append order.
func (c *Collector) All() []*DiagnosticError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*DiagnosticError, len(c.list))
	copy(out, c.list)
	return out
}

// Count returns the number of collected diagnostics.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.list)
}

// ByCode returns collected diagnostics carrying the given code.
func (c *Collector) ByCode(code ErrorCode) []*DiagnosticError {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*DiagnosticError
	for _, e := range c.list {
		if e.Code == code {
			out = append(out, e)
		}
	}
	return out
}
