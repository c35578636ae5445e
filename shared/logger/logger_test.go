package logger_test

import (
	"bytes"
	"errors"
	"kasaglow/config"
	"kasaglow/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger(&config.Config{})

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "kasaglow"

	var buf bytes.Buffer
	l := logger.New(&buf, cfg)
	l.Info().Str("step", "pay").Msg("transition")

	out := buf.String()
	assert.Contains(t, out, `"app":"kasaglow"`)
	assert.Contains(t, out, `"step":"pay"`)
	assert.Contains(t, out, `"message":"transition"`)
}

func TestNew_DevelopmentWritesConsole(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "development"

	var buf bytes.Buffer
	l := logger.New(&buf, cfg)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("test error"))

	assert.Contains(t, buf.String(), "test error")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"disabled level", "disabled", zerolog.Disabled},
		{"invalid level defaults to trace", "invalid_level", zerolog.TraceLevel},
		{"empty level uses NoLevel", "", zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
