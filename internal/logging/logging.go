/*
Package logging provides a shared, lazily configured logger for all parts of
the program.
*/
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/jward0/crabablanca/internal/config"
)

var log *logging.Logger

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-8s} %{shortpkg:-10s} %{message}`)

// GetLog returns the application logger, creating and configuring it on the
// first call.  The log level is taken from config.Settings.
func GetLog() *logging.Logger {
	if log == nil {
		log = logging.MustGetLogger("crabablanca")
		backend := logging.NewBackendFormatter(
			logging.NewLogBackend(os.Stderr, "", 0), format)
		leveled := logging.AddModuleLevel(backend)
		leveled.SetLevel(logging.Level(config.Settings.Log.Level), "")
		log.SetBackend(leveled)
	}
	return log
}
