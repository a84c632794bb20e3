package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/repro/internal/config"
	"github.com/llehouerou/repro/internal/errmsg"
	"github.com/llehouerou/repro/internal/playback"
	"github.com/llehouerou/repro/internal/playlist"
)

const bannerText = "Sistema de Reproducción de Música"

// stepError ties a failure to the driver step that produced it.
type stepError struct {
	op   errmsg.Op
	song string // empty when the step is not tied to a song
	err  error
}

func (e *stepError) Error() string { return errmsg.FormatWith(e.op, e.song, e.err) }

func (e *stepError) Unwrap() error { return e.err }

// renderBanner styles the banner for out. Non-terminal writers get plain text.
func renderBanner(out io.Writer) string {
	return lipgloss.NewRenderer(out).NewStyle().Bold(true).Render(bannerText)
}

func run(out io.Writer, cfg *config.Config) error {
	player := playback.New(playlist.New(cfg.Songs()...), out, cfg.Position())

	if _, err := fmt.Fprintln(out, renderBanner(out)); err != nil {
		return &stepError{op: errmsg.OpBannerWrite, err: err}
	}

	iterator := player.CreateIterator()
	for iterator.HasNext() {
		state, err := player.SaveState()
		if err != nil {
			return &stepError{op: errmsg.OpStateSave, err: err}
		}
		player.RestoreState(state)

		if err := player.Play(); err != nil {
			return &stepError{op: errmsg.OpPlaybackStart, song: state.Song(), err: err}
		}
		if err := player.Pause(); err != nil {
			return &stepError{op: errmsg.OpPlaybackPause, song: state.Song(), err: err}
		}
	}

	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
