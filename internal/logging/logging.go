// Package logging builds the CLI's slog.Logger: a text or JSON handler on
// stderr, an optional log file and an optional systemd journal sink, fanned
// out with slog-multi.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
	ErrLogFile       = errors.New("cannot open log file")
)

// Options selects the sinks. Zero Options logs warnings and above as text
// to os.Stderr.
type Options struct {
	Level   string // debug, info, warn (default), error
	Format  string // text (default) or json
	File    string // extra sink, always JSON
	Journal bool   // add the systemd journal when reachable
	Stderr  io.Writer
}

// journalFactory is swapped in tests.
var journalFactory = func(level slog.Leveler) (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return journalKey(key)
		},
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = journalKey(a.Key)
			return a
		},
	})
}

// ParseLevel maps a level name to a slog.Level. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// New builds a logger from opts. The returned close function releases the
// log file, if any, and is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var terminal slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		terminal = slog.NewTextHandler(stderr, handlerOpts)
	case "json":
		terminal = slog.NewJSONHandler(stderr, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidFormat, opts.Format)
	}

	handlers := []slog.Handler{terminal}
	closeFn := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 -- user-chosen log path
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrLogFile, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closeFn = f.Close
	}

	if opts.Journal {
		journal, err := journalFactory(level)
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.AddAttrs(slog.String("error", err.Error()))
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	if len(handlers) == 1 {
		return slog.New(terminal), closeFn, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// journalKey upper-cases key and maps anything outside [A-Z0-9] to '_',
// as journald field names require.
func journalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}
