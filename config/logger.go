package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

// InitLogger configures the global logger from LOG_LEVEL and LOG_FORMAT.
// Defaults to info-level JSON on stdout.
func InitLogger() {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "console" {
		Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().Timestamp().Logger()
		return
	}

	Logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
