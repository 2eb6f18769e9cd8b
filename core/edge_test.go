package core

import "testing"

func TestDetectRisingEdgeTruthTable(t *testing.T) {
	testCases := []struct {
		prev, cur bool
		edge      bool
		newPrev   bool
	}{
		{false, false, false, false},
		{false, true, true, true},
		{true, true, false, true},
		{true, false, false, false},
	}

	for _, tc := range testCases {
		edge, newPrev := DetectRisingEdge(tc.prev, tc.cur)
		if edge != tc.edge || newPrev != tc.newPrev {
			t.Errorf("DetectRisingEdge(%v, %v) = (%v, %v), want (%v, %v)",
				tc.prev, tc.cur, edge, newPrev, tc.edge, tc.newPrev)
		}
	}
}

func TestEdgeStateSinglePress(t *testing.T) {
	var e EdgeState
	levels := []bool{false, false, true, true, true, false, false}
	edges := 0
	for _, l := range levels {
		if e.Sample(l, 0) {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("Expected 1 edge for a held press, got %d", edges)
	}
	if e.PreviousLevel {
		t.Error("Expected PreviousLevel low after release")
	}
}

func TestEdgeStateBounceWithoutDebounce(t *testing.T) {
	var e EdgeState
	// Contact chatter: every low->high transition counts when no
	// minimum interval is configured.
	levels := []bool{true, false, true, false, true}
	edges := 0
	for _, l := range levels {
		if e.Sample(l, 0) {
			edges++
		}
	}
	if edges != 3 {
		t.Errorf("Expected 3 edges, got %d", edges)
	}
}

func TestEdgeStateMinimumInterval(t *testing.T) {
	var e EdgeState
	levels := []bool{true, false, true, false, true}
	edges := 0
	for _, l := range levels {
		if e.Sample(l, 10) {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("Expected chatter collapsed to 1 edge, got %d", edges)
	}

	// Release long enough, then press again
	for i := 0; i < 10; i++ {
		e.Sample(false, 10)
	}
	if !e.Sample(true, 10) {
		t.Error("Expected edge after the minimum interval elapsed")
	}
}
