package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Setup returns a console logger, debug level in development.
func Setup(environment string) zerolog.Logger {
	return SetupWithWriter(environment, os.Stderr)
}

func SetupWithWriter(environment string, writer io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(
		zerolog.ConsoleWriter{
			Out:     writer,
			NoColor: writer != os.Stderr,
		},
	).
		With().
		Timestamp().
		Logger().
		Level(level)
}
