package playback

import (
	"github.com/llehouerou/repro/internal/player"
	"github.com/llehouerou/repro/internal/playlist"
)

// Service defines the playback coordination contract.
type Service interface {
	// Iteration
	CreateIterator() playlist.SongIterator

	// Snapshots
	SaveState() (player.State, error)
	RestoreState(state player.State)
	Current() (player.State, bool)

	// Playback control
	Play() error
	Pause() error
	Stop() error

	// State queries
	Phase() Phase
}
