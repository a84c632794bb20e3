package playlist

import "errors"

// ErrExhausted is returned by Next when every title has been read.
var ErrExhausted = errors.New("iterator exhausted")

// SongIterator walks song titles forward, one at a time.
type SongIterator interface {
	HasNext() bool
	Next() (string, error)
}

// Verify Iterator implements SongIterator at compile time.
var _ SongIterator = (*Iterator)(nil)

// Iterator is a single-pass cursor over a Playlist.
type Iterator struct {
	playlist *Playlist
	cursor   int // index of the next title to return
}

// NewIterator creates an iterator positioned before the first title.
func NewIterator(p *Playlist) *Iterator {
	return &Iterator{playlist: p}
}

// HasNext returns true if there are unread titles.
func (it *Iterator) HasNext() bool {
	return it.cursor < it.playlist.Len()
}

// Next returns the title at the cursor and advances it.
// Returns ErrExhausted without moving the cursor when nothing is left.
func (it *Iterator) Next() (string, error) {
	title, ok := it.playlist.Title(it.cursor)
	if !ok {
		return "", ErrExhausted
	}
	it.cursor++
	return title, nil
}

// Remaining returns the number of unread titles.
func (it *Iterator) Remaining() int {
	return it.playlist.Len() - it.cursor
}
