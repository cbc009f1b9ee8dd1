// Package logger builds the zerolog logger shared by the whole process.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout, tagged with the given role
// (e.g. "api") so output from different binaries can be told apart.
func New(role string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
