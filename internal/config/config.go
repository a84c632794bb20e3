package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/repro/internal/playback"
)

const appName = "repro"

// DefaultPosition is the simulated playback position, in seconds.
const DefaultPosition = playback.DefaultPosition

// DefaultSongs is the playlist used when none is configured.
var DefaultSongs = []string{"Canción 1", "Canción 2", "Canción 3"}

type Config struct {
	Playlist []string `koanf:"playlist"` // song titles, in play order

	Playback PlaybackConfig `koanf:"playback"`
}

// PlaybackConfig holds the simulated playback settings.
type PlaybackConfig struct {
	PositionSeconds *int `koanf:"position_seconds"` // reported position (default: 120)
}

// Load reads the config files from their default locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order (last wins).
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/repro/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// Songs returns the configured playlist, or DefaultSongs when it is empty.
func (c *Config) Songs() []string {
	src := c.Playlist
	if len(src) == 0 {
		src = DefaultSongs
	}
	songs := make([]string, len(src))
	copy(songs, src)
	return songs
}

// Position returns the configured playback position with defaults applied.
func (c *Config) Position() int {
	p := c.Playback.PositionSeconds
	if p == nil || *p < 0 {
		return DefaultPosition
	}
	return *p
}
