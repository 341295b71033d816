package bank

import (
	"net/url"
	"slices"
	"sync"
)

// History is the navigation history of the client.
type History interface {
	// Push records ref as the new current location. ref is resolved
	// against the current location, like a link target.
	Push(ref string)
	// Path returns the path of the current location.
	Path() string
	// Back moves to the previous location, it reports false if there is none.
	Back() bool
}

// MemoryHistory is an in-process History.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemoryHistory returns a history whose current location is start.
func NewMemoryHistory(start string) *MemoryHistory {
	return &MemoryHistory{entries: []string{resolve("/", start)}}
}

func (h *MemoryHistory) Push(ref string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, resolve(h.entries[len(h.entries)-1], ref))
}

func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) < 2 {
		return false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Entries returns a copy of all the visited paths, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// resolve returns the path of ref relative to the current path.
// A ref that is not a valid URL is kept as is, it will not match any route.
func resolve(current, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	base := &url.URL{Scheme: "http", Host: "localhost", Path: current}
	p := base.ResolveReference(u).Path
	if p == "" {
		p = "/"
	}
	return p
}
