package engine

// History is the append-only log of committed table states. The first
// entry, the initial deal, is the irreducible floor: Undo never removes
// it.
type History struct {
	states []Table
}

// Push records a snapshot unless it equals the current tail, so no-op
// transactions never inflate the log.
func (h *History) Push(t Table) {
	if len(h.states) > 0 && h.states[len(h.states)-1].Equal(t) {
		return
	}
	h.states = append(h.states, t.Clone())
}

// Undo discards the most recent state and returns the new tail. Refused
// (ok=false) when only the initial state remains.
func (h *History) Undo() (Table, bool) {
	if len(h.states) <= 1 {
		return Table{}, false
	}
	h.states = h.states[:len(h.states)-1]
	return h.states[len(h.states)-1].Clone(), true
}

func (h *History) Len() int {
	return len(h.states)
}
