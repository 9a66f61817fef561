package roster

import "sync"

// Handle is a shared reference to the single roster of the app. The owner
// keeps the handle for the life of the program and passes it to readers
// and to the canvas; mutation happens inside a short exclusive window so
// a concurrent writer can never observe a mid-removal state.
type Handle struct {
	mu     sync.Mutex
	roster *Roster
}

// NewHandle wraps a roster in a shared handle. A nil roster is replaced
// with an empty one.
func NewHandle(r *Roster) *Handle {
	if r == nil {
		r = New()
	}
	return &Handle{roster: r}
}

// Snapshot returns a copy of the element sequence for rendering. Mutating
// the returned slice does not affect the shared roster.
func (h *Handle) Snapshot() []Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	elems := make([]Element, len(h.roster.Elements))
	copy(elems, h.roster.Elements)
	return elems
}

// Len returns the current element count.
func (h *Handle) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.roster.Elements)
}

// TotalPoints returns the current aggregate point value.
func (h *Handle) TotalPoints() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.roster.TotalPoints()
}

// Mutate runs fn with exclusive access to the roster. The borrow lasts
// only for the duration of fn; callers signal the owner after Mutate
// returns, never inside it.
func (h *Handle) Mutate(fn func(*Roster)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.roster)
}

// Replace swaps in a new element sequence, e.g. after loading from storage.
func (h *Handle) Replace(elems []Element) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roster.Elements = elems
}
