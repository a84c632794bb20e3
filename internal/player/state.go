// internal/player/state.go
package player

import "time"

// State is an immutable snapshot of what the player is doing: the song and how
// far into it playback is, in whole seconds.
//
// The zero value is a state that was never captured (see IsZero).
type State struct {
	song     string
	time     int
	captured bool
}

// NewState creates a snapshot. A negative time is clamped to 0.
func NewState(song string, seconds int) State {
	if seconds < 0 {
		seconds = 0
	}
	return State{
		song:     song,
		time:     seconds,
		captured: true,
	}
}

// Song returns the song title.
func (s State) Song() string {
	return s.song
}

// Time returns the playback time in seconds.
func (s State) Time() int {
	return s.time
}

// Position returns the playback time as a duration.
func (s State) Position() time.Duration {
	return time.Duration(s.time) * time.Second
}

// IsZero returns true if the state was not created through NewState.
func (s State) IsZero() bool {
	return !s.captured
}
