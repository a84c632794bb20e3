// internal/playback/state.go
package playback

// Phase describes where the mediator is in its single pass over the playlist.
//
//	┌──────┐  CreateIterator  ┌───────────┐  last SaveState  ┌───────────┐
//	│ Idle │ ───────────────▶ │ Iterating │ ───────────────▶ │ Exhausted │
//	└──────┘                  └───────────┘                  └───────────┘
//
// CreateIterator from any phase starts a fresh pass. Play, Pause and Stop do not
// change the phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseIterating
	PhaseExhausted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseIterating:
		return "Iterating"
	case PhaseExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// IsActive returns true if an iterator has been created.
func (p Phase) IsActive() bool {
	return p == PhaseIterating || p == PhaseExhausted
}
