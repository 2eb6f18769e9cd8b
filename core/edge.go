package core

// DetectRisingEdge reports a low-to-high transition between two samples
// and returns the level to remember for the next call.
func DetectRisingEdge(previousLevel, currentLevel bool) (edgeDetected, newPreviousLevel bool) {
	return !previousLevel && currentLevel, currentLevel
}

// EdgeState tracks one toggle input between poll points.
//
// Sample must be called with exactly one reading of the input per poll
// point. Re-reading the pin within the same poll point lets a single
// bouncing press register twice.
type EdgeState struct {
	PreviousLevel bool

	// polls since the last accepted edge, saturating
	sinceEdge uint32
	accepted  bool
}

// Sample feeds one reading and reports whether it produced an accepted
// rising edge. minPolls > 0 additionally rejects edges that arrive within
// minPolls polls of the previous accepted one; 0 relies on the poll
// interval alone.
func (e *EdgeState) Sample(level bool, minPolls uint32) bool {
	edge, prev := DetectRisingEdge(e.PreviousLevel, level)
	e.PreviousLevel = prev
	if e.sinceEdge != ^uint32(0) {
		e.sinceEdge++
	}
	if !edge {
		return false
	}
	if minPolls > 0 && e.accepted && e.sinceEdge < minPolls {
		return false
	}
	e.sinceEdge = 0
	e.accepted = true
	return true
}
