package core

// ChaseState is the position of the lit light in the ring.
//
// Index wraps modulo the full ring size. In short mode the visual cycle is
// truncated by forcing Index back to 0 when it would reach the short
// threshold; an Index already past the threshold when short mode is enabled
// is not clamped and runs on until the natural wrap.
type ChaseState struct {
	Index       int
	ActiveCount int
}

// RingConfig is the geometry Advance needs
type RingConfig struct {
	Size           int
	ShortThreshold int
}

// Advance moves the chase one step, unless frozen
func Advance(state ChaseState, modes ModeState, ring RingConfig) ChaseState {
	if modes.Freeze {
		return state
	}
	next := (state.Index + 1) % ring.Size
	if modes.ShortMode && next == ring.ShortThreshold {
		next = 0
	}
	return ChaseState{Index: next, ActiveCount: state.ActiveCount}
}

// Render returns the lights to activate for state: the ring light at Index
// plus the indicator of each active mode. The output bank clears
// everything before applying it.
func Render(state ChaseState, modes ModeState) Frame {
	return Frame{
		Ring:   1 << uint(state.Index),
		Freeze: modes.Freeze,
		Short:  modes.ShortMode,
	}
}

// activeCountFor is the number of ring lights visited in a full cycle
func activeCountFor(modes ModeState, ring RingConfig) int {
	if modes.ShortMode {
		return ring.ShortThreshold
	}
	return ring.Size
}
