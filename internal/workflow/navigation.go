package workflow

import "sync"

// Navigator performs client-side navigation.
type Navigator interface {
	Navigate(path string)
}

// ListPath is the list view of a module.
func ListPath(module string) string {
	return "/dashboard/" + module
}

// DetailPath is the detail view of one record.
func DetailPath(module, id string) string {
	return "/dashboard/" + module + "/" + id
}

// History is an in-memory Navigator.
type History struct {
	mu    sync.Mutex
	paths []string
}

// Navigate appends path.
func (h *History) Navigate(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
}

// Current returns the latest path, or "" before any navigation.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.paths) == 0 {
		return ""
	}
	return h.paths[len(h.paths)-1]
}

// Paths returns every visited path in order.
func (h *History) Paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.paths...)
}
