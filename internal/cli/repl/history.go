package repl

import "sync"

// DefaultHistorySize is the number of lines kept by default.
const DefaultHistorySize = 1000

// History keeps the lines entered during one shell session. It is not
// written to disk.
type History struct {
	mu      sync.Mutex
	entries []string
	maxSize int
}

// NewHistory creates a history holding at most maxSize lines.
func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = DefaultHistorySize
	}
	return &History{maxSize: maxSize}
}

// Add appends a line. A repeat of the previous line is not stored again.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

// Get returns the entry at index, 0 being the most recent.
func (h *History) Get(index int) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
