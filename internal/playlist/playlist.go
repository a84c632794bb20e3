package playlist

// Playlist holds an ordered, read-only collection of song titles.
type Playlist struct {
	titles []string
}

// New creates a playlist from the given titles.
// The titles are copied, so later changes to the caller's slice are not seen.
func New(titles ...string) *Playlist {
	result := make([]string, len(titles))
	copy(result, titles)
	return &Playlist{titles: result}
}

// Titles returns a copy of all titles.
func (p *Playlist) Titles() []string {
	result := make([]string, len(p.titles))
	copy(result, p.titles)
	return result
}

// Title returns the title at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Title(index int) (string, bool) {
	if index < 0 || index >= len(p.titles) {
		return "", false
	}
	return p.titles[index], true
}

// Len returns the number of titles.
func (p *Playlist) Len() int {
	return len(p.titles)
}

// IsEmpty returns true if the playlist has no titles.
func (p *Playlist) IsEmpty() bool {
	return len(p.titles) == 0
}
