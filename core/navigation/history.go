package navigation

import "sync"

// History is the client's session history. Push adds an entry, Replace
// overwrites the current one.
type History interface {
	Current() string
	Push(url string)
	Replace(url string)
}

// MemoryHistory is an in-process History. Safe for concurrent use.
type MemoryHistory struct {
	mu      sync.RWMutex
	entries []string
}

// NewMemoryHistory returns a history whose current entry is initial.
// An empty initial yields an empty history.
func NewMemoryHistory(initial string) *MemoryHistory {
	h := &MemoryHistory{}
	if initial != "" {
		h.entries = append(h.entries, initial)
	}
	return h
}

// Current returns the most recent entry or "".
func (h *MemoryHistory) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Push appends url.
func (h *MemoryHistory) Push(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, url)
}

// Replace overwrites the current entry, or appends when the history is empty.
func (h *MemoryHistory) Replace(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		h.entries = append(h.entries, url)
		return
	}
	h.entries[len(h.entries)-1] = url
}

// Entries returns a copy of every entry, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
