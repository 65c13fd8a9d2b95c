package modalview

import (
	"errors"

	"github.com/rs/zerolog"
)

// LogError logs the full error and returns a new error holding only msg, so
// internals never leak into what a client gets to see.
func LogError(logger zerolog.Logger, msg string, err error) error {
	logger.Error().Err(err).Msg(msg)
	return errors.New(msg)
}
