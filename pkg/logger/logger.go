package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init replaces the global zerolog logger. Local environments get a console
// writer; everything else emits JSON lines on stdout for the log shipper.
func Init(env, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if env == "development" || env == "test" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("env", env).
		Logger()

	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

// Warn attaches err when non-nil.
func Warn(msg string, err error, fields map[string]interface{}) {
	ev := log.Warn().Fields(fields)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
