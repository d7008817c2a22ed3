package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Init configures the process-wide logger. format is "json" or "console".
func Init(level, format string, out io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	mu.Lock()
	log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &log
}

func Info(format string, v ...interface{}) {
	get().Info().Msg(fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	get().Error().Msg(fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	get().Debug().Msg(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...interface{}) {
	get().Warn().Msg(fmt.Sprintf(format, v...))
}

// Event starts a structured warn-level record tagged with name. Used for
// fallback paths that are invisible to callers.
//
//	logger.Event("igdb.batch_failed").Int("batch", i).Err(err).Msg("batch skipped")
func Event(name string) *zerolog.Event {
	return get().Warn().Str("event", name)
}

// Truncate shortens upstream bodies before they reach the log. The cut never
// splits a multi-byte rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
