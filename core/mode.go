package core

// ModeState holds the two runtime toggles. Both start off at power-up.
type ModeState struct {
	Freeze    bool
	ShortMode bool
}

// ApplyToggles flips each mode whose input produced an edge.
// The two toggles are independent and may both fire on the same poll.
func ApplyToggles(modes ModeState, freezeEdge, shortModeEdge bool) ModeState {
	return ModeState{
		Freeze:    modes.Freeze != freezeEdge,
		ShortMode: modes.ShortMode != shortModeEdge,
	}
}
