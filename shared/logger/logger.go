package logger

import (
	"io"
	"kasaglow/config"
	"kasaglow/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a console
// writer, every other environment emits JSON lines tagged with the app name.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(os.Stdout, cfg)
	log.Trace().Msg("Zerolog initialized.")
}

// New builds a logger writing to out using the format for cfg's environment.
func New(out io.Writer, cfg *config.Config) zerolog.Logger {
	if cfg == nil || cfg.Server.Env == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
