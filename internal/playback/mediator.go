// internal/playback/mediator.go
package playback

import (
	"errors"
	"fmt"
	"io"

	"github.com/llehouerou/repro/internal/player"
	"github.com/llehouerou/repro/internal/playlist"
)

// DefaultPosition is the simulated playback position, in seconds, attached to
// every saved state.
const DefaultPosition = 120

var (
	// ErrNoActiveState is returned by Play and Pause before any RestoreState.
	ErrNoActiveState = errors.New("no active state")
	// ErrNoIterator is returned by SaveState before any CreateIterator.
	ErrNoIterator = errors.New("no active iterator")
)

// Verify Mediator implements Service at compile time.
var _ Service = (*Mediator)(nil)

// Mediator is the single coordination point between the playlist, its
// iterator and the console. It is not safe for concurrent use.
type Mediator struct {
	playlist *playlist.Playlist
	out      io.Writer
	position int

	iterator *playlist.Iterator // nil until CreateIterator
	current  player.State
}

// New creates a mediator over pl that reports to out. position is the playback
// time, in seconds, paired with each saved song.
func New(pl *playlist.Playlist, out io.Writer, position int) *Mediator {
	return &Mediator{
		playlist: pl,
		out:      out,
		position: position,
	}
}

// CreateIterator starts a new pass over the playlist, dropping any previous
// iterator.
func (m *Mediator) CreateIterator() playlist.SongIterator {
	m.iterator = playlist.NewIterator(m.playlist)
	return m.iterator
}

// SaveState pulls the next song from the active iterator and pairs it with the
// simulated position.
func (m *Mediator) SaveState() (player.State, error) {
	if m.iterator == nil {
		return player.State{}, ErrNoIterator
	}
	song, err := m.iterator.Next()
	if err != nil {
		return player.State{}, fmt.Errorf("save state: %w", err)
	}
	return player.NewState(song, m.position), nil
}

// RestoreState makes state the current one, replacing any previous state.
func (m *Mediator) RestoreState(state player.State) {
	m.current = state
}

// Current returns the current state, or false if none was restored yet.
func (m *Mediator) Current() (player.State, bool) {
	if m.current.IsZero() {
		return player.State{}, false
	}
	return m.current, true
}

// Play reports the current song and its playback time.
func (m *Mediator) Play() error {
	return m.report("play", "Reproduciendo la canción")
}

// Pause reports the current song and its playback time.
func (m *Mediator) Pause() error {
	return m.report("pause", "Pausando la canción")
}

// Stop reports that playback stopped. It needs no current state.
func (m *Mediator) Stop() error {
	if _, err := fmt.Fprintln(m.out, "Deteniendo la reproducción"); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

// Phase returns the mediator's position in its pass over the playlist.
func (m *Mediator) Phase() Phase {
	switch {
	case m.iterator == nil:
		return PhaseIdle
	case m.iterator.HasNext():
		return PhaseIterating
	default:
		return PhaseExhausted
	}
}

func (m *Mediator) report(op, label string) error {
	state, ok := m.Current()
	if !ok {
		return ErrNoActiveState
	}
	_, err := fmt.Fprintf(m.out, "%s: %s\nTiempo de reproducción: %d segundos\n",
		label, state.Song(), state.Time())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
