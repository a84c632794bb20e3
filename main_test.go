package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/repro/internal/config"
	"github.com/llehouerou/repro/internal/errmsg"
)

var errWrite = errors.New("closed pipe")

// limitWriter fails once more than n writes were attempted.
type limitWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return w.buf.Write(p)
}

func TestRun_DefaultPlaylist(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(&out, &config.Config{}))

	want := strings.Join([]string{
		"Sistema de Reproducción de Música",
		"Reproduciendo la canción: Canción 1",
		"Tiempo de reproducción: 120 segundos",
		"Pausando la canción: Canción 1",
		"Tiempo de reproducción: 120 segundos",
		"Reproduciendo la canción: Canción 2",
		"Tiempo de reproducción: 120 segundos",
		"Pausando la canción: Canción 2",
		"Tiempo de reproducción: 120 segundos",
		"Reproduciendo la canción: Canción 3",
		"Tiempo de reproducción: 120 segundos",
		"Pausando la canción: Canción 3",
		"Tiempo de reproducción: 120 segundos",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestRun_OnePlayAndPausePerSong(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(&out, &config.Config{}))

	assert.Equal(t, 3, strings.Count(out.String(), "Reproduciendo la canción:"))
	assert.Equal(t, 3, strings.Count(out.String(), "Pausando la canción:"))
	assert.NotContains(t, out.String(), "Deteniendo")
}

func TestRun_ConfiguredPlaylist(t *testing.T) {
	var out bytes.Buffer
	position := 7
	cfg := &config.Config{
		Playlist: []string{"Solo"},
		Playback: config.PlaybackConfig{PositionSeconds: &position},
	}

	require.NoError(t, run(&out, cfg))

	want := "Sistema de Reproducción de Música\n" +
		"Reproduciendo la canción: Solo\n" +
		"Tiempo de reproducción: 7 segundos\n" +
		"Pausando la canción: Solo\n" +
		"Tiempo de reproducción: 7 segundos\n"
	assert.Equal(t, want, out.String())
}

func TestRun_WriteFailures(t *testing.T) {
	tests := []struct {
		name    string
		writes  int
		op      errmsg.Op
		wantMsg string
	}{
		{"banner", 0, errmsg.OpBannerWrite, "Failed to write banner: closed pipe"},
		{"play", 1, errmsg.OpPlaybackStart, "Failed to start playback 'Canción 1': play: closed pipe"},
		{"pause", 2, errmsg.OpPlaybackPause, "Failed to pause playback 'Canción 1': pause: closed pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &limitWriter{n: tt.writes}

			err := run(w, &config.Config{})

			require.ErrorIs(t, err, errWrite)
			var stepErr *stepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.op, stepErr.op)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
