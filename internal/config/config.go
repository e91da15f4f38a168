// Package config loads the optional TOML settings file for the
// command line tools.  Flags always override file values; there are
// no environment variables.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings holds the perft command configuration.
type Settings struct {
	// Fen is the position the command starts from.
	Fen string `toml:"fen"`
	// Depth is the deepest ply to count.
	Depth int `toml:"depth"`
	// LogLevel is one of the go-logging level names.
	LogLevel string `toml:"log_level"`
	// Profile enables CPU profiling for the run.
	Profile bool `toml:"profile"`
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Defaults returns the settings used when no file is given.
func Defaults() Settings {
	return Settings{
		Fen:      startFEN,
		Depth:    5,
		LogLevel: "info",
	}
}

// Load reads settings from the TOML file at path, filling unset
// fields from the defaults.  An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if s.Depth < 0 {
		return s, fmt.Errorf("config: depth %d out of range", s.Depth)
	}
	return s, nil
}
