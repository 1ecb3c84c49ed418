package main

// History keeps bounded whole-document snapshots for linear undo/redo.
// Documents here are small (blocks cap at 100x100 seats), so snapshot
// history is cheaper than inverse actions and trivially correct.
type History struct {
	past   []*SeatMap
	future []*SeatMap
}

// Record pushes the pre-mutation snapshot and invalidates redo. The oldest
// entry is evicted once the stack holds historyLimit snapshots.
func (h *History) Record(prev *SeatMap) {
	h.past = append(h.past, prev)
	if len(h.past) > historyLimit {
		h.past = h.past[len(h.past)-historyLimit:]
	}
	h.future = h.future[:0]
}

// Undo trades the current document for the most recent snapshot. Returns
// ok=false (and current unchanged) when there is nothing to undo.
func (h *History) Undo(current *SeatMap) (*SeatMap, bool) {
	if len(h.past) == 0 {
		return current, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]*SeatMap{current}, h.future...)
	return prev, true
}

// Redo reverses the most recent Undo.
func (h *History) Redo(current *SeatMap) (*SeatMap, bool) {
	if len(h.future) == 0 {
		return current, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current)
	return next, true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Reset drops both stacks; used on Load and on new documents.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
}
