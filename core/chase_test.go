package core

import "testing"

var refRing = RingConfig{Size: DefaultRingSize, ShortThreshold: DefaultShortThreshold}

func TestAdvanceFrozenIsIdempotent(t *testing.T) {
	frozen := ModeState{Freeze: true}
	for i := 0; i < DefaultRingSize; i++ {
		s := ChaseState{Index: i, ActiveCount: 16}
		once := Advance(s, frozen, refRing)
		twice := Advance(once, frozen, refRing)
		if once != s || twice != s {
			t.Errorf("index %d: frozen advance moved to %+v then %+v", i, once, twice)
		}
	}

	// Short mode does not matter while frozen
	s := ChaseState{Index: 7, ActiveCount: 8}
	if got := Advance(s, ModeState{Freeze: true, ShortMode: true}, refRing); got != s {
		t.Errorf("Expected %+v, got %+v", s, got)
	}
}

func TestAdvanceFullCycleWraps(t *testing.T) {
	for start := 0; start < DefaultRingSize; start++ {
		s := ChaseState{Index: start, ActiveCount: 16}
		for step := 0; step < DefaultRingSize; step++ {
			s = Advance(s, ModeState{}, refRing)
		}
		if s.Index != start {
			t.Errorf("start %d: after 16 steps index = %d", start, s.Index)
		}
	}
}

func TestAdvanceFullCycleOrder(t *testing.T) {
	s := ChaseState{Index: 14, ActiveCount: 16}
	want := []int{15, 0, 1}
	for _, w := range want {
		s = Advance(s, ModeState{}, refRing)
		if s.Index != w {
			t.Fatalf("Expected index %d, got %d", w, s.Index)
		}
	}
}

func TestAdvanceShortModeBounded(t *testing.T) {
	short := ModeState{ShortMode: true}
	s := ChaseState{Index: 0, ActiveCount: 8}
	seen := make([]int, 0, 24)
	for step := 0; step < 24; step++ {
		s = Advance(s, short, refRing)
		if s.Index >= DefaultShortThreshold {
			t.Fatalf("step %d: index %d escaped the short cycle", step, s.Index)
		}
		seen = append(seen, s.Index)
	}
	// 1..7, 0, 1..7, 0, 1..7, 0
	for i, idx := range seen {
		if want := (i + 1) % DefaultShortThreshold; idx != want {
			t.Errorf("step %d: expected index %d, got %d", i, want, idx)
		}
	}
}

func TestAdvanceLateShortModeRunsToWrap(t *testing.T) {
	// Enabling short mode past the threshold does not clamp the index;
	// the chase finishes the full ring first.
	short := ModeState{ShortMode: true}
	s := ChaseState{Index: 10, ActiveCount: 8}
	want := []int{11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7, 0}
	for i, w := range want {
		s = Advance(s, short, refRing)
		if s.Index != w {
			t.Fatalf("step %d: expected index %d, got %d", i, w, s.Index)
		}
	}
}

func TestAdvanceKeepsActiveCount(t *testing.T) {
	s := Advance(ChaseState{Index: 3, ActiveCount: 16}, ModeState{ShortMode: true}, refRing)
	if s.ActiveCount != 16 {
		t.Errorf("Expected ActiveCount carried through, got %d", s.ActiveCount)
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name  string
		state ChaseState
		modes ModeState
		want  Frame
	}{
		{"first light", ChaseState{Index: 0}, ModeState{}, Frame{Ring: 1}},
		{"last light", ChaseState{Index: 15}, ModeState{}, Frame{Ring: 1 << 15}},
		{"frozen", ChaseState{Index: 4}, ModeState{Freeze: true}, Frame{Ring: 1 << 4, Freeze: true}},
		{"short", ChaseState{Index: 7}, ModeState{ShortMode: true}, Frame{Ring: 1 << 7, Short: true}},
		{"both", ChaseState{Index: 2}, ModeState{Freeze: true, ShortMode: true}, Frame{Ring: 1 << 2, Freeze: true, Short: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.state, tc.modes); got != tc.want {
				t.Errorf("Render = %+v, want %+v", got, tc.want)
			}
		})
	}
}
