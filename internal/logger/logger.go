package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New создает zerolog.Logger с уровнем из конфигурации.
// Неизвестный или пустой уровень трактуется как info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
