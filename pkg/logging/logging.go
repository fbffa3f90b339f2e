package logging

import (
	"io"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
)

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.Wrapf(err, "invalid log level: %q", name)
	}

	return level, nil
}

// NewLogger returns a tint backed logger writing to w. Colors follow the
// terminal detection of fatih/color, so piped output stays plain.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    color.NoColor,
	}))
}

// Setup installs a logger for the given level name as the slog default and
// sends the standard library logger through it.
//
// Example:
//
//	logger, err := logging.Setup(os.Stderr, "debug")
//	if err != nil {
//		return err
//	}
//	logger.Debug("formatting", "file", path)
func Setup(w io.Writer, levelName string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(w, level)
	slog.SetDefault(logger)

	log.SetOutput(&slogWriter{logger: logger})
	log.SetFlags(0)

	return logger, nil
}

// slogWriter turns lines written by the standard logger into info records.
type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
