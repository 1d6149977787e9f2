package logging

import (
	"context"
	"log/slog"

	"github.com/ib-77/outcome/pkg/outcome"
)

// ErrorKey is the attribute key the cause of a failure is logged under.
const ErrorKey = "error"

// Slog forwards outcome log lines to a *slog.Logger.
type Slog struct {
	logger *slog.Logger
}

var _ outcome.Logger = (*Slog)(nil)

// New wraps logger. A nil logger discards everything.
func New(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Slog{logger: logger}
}

// Discard returns a Slog that drops every record.
func Discard() *Slog {
	return New(nil)
}

func (s *Slog) Log(ctx context.Context, level outcome.Level, msg string, cause error, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cause != nil {
		args = append(args, slog.Any(ErrorKey, cause))
	}
	s.logger.Log(ctx, Level(level), msg, args...)
}

// Level maps an outcome level onto its slog counterpart.
func Level(level outcome.Level) slog.Level {
	switch level {
	case outcome.LevelDebug:
		return slog.LevelDebug
	case outcome.LevelWarn:
		return slog.LevelWarn
	case outcome.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
