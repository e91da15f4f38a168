// Package logging configures the process-wide logger used by the
// commands.  The core library, including move generation, the
// transition and the SVG renderer, doesn't log.
package logging

import (
	"os"
	"sync"

	logging "github.com/op/go-logging"
)

const module = "chesscore"

var (
	log     *logging.Logger
	leveled logging.LeveledBackend
	once    sync.Once
)

// GetLog returns the configured logger, creating it on first use.
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger(module)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{level:-7.7s} %{shortfunc:-20.20s} %{message}`)
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled = logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		log.SetBackend(leveled)
	})
	return log
}

// SetLevel changes the log level.  Unknown level names are ignored.
func SetLevel(level string) {
	GetLog()
	l, err := logging.LogLevel(level)
	if err != nil {
		return
	}
	leveled.SetLevel(l, "")
}
