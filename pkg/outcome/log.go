package outcome

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ib-77/outcome/pkg/outcome/format"
)

// Level is the severity an outcome is logged at.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the collaborator outcomes are logged through. Implementations own
// their backend and formatting; args are alternating key/value pairs.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, cause error, args ...any)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(ctx context.Context, level Level, msg string, cause error, args ...any)

func (f LoggerFunc) Log(ctx context.Context, level Level, msg string, cause error, args ...any) {
	f(ctx, level, msg, cause, args...)
}

// Log writes o to logger at level and returns o unchanged. msg and args are
// run through format.Format and lead the line; an empty msg logs
// MsgLogDefault. A nil logger is a no-op and a panicking logger is ignored.
func (o Outcome[T]) Log(ctx context.Context, logger Logger, level Level, msg string, args ...any) Outcome[T] {
	logOutcome(ctx, logger, level, o, msg, args...)
	return o
}

// LogFailure is Log restricted to Failure outcomes.
func (o Outcome[T]) LogFailure(ctx context.Context, logger Logger, level Level, msg string, args ...any) Outcome[T] {
	if o.IsFailure() {
		logOutcome(ctx, logger, level, o, msg, args...)
	}
	return o
}

// LogLine composes the line Log writes for n:
//
//	<msg> | <variant>, value: <payload>, message: <message>[, cause: <cause>]
func LogLine(n Nested, msg string, args ...any) string {
	lead := MsgLogDefault
	if msg != "" {
		lead = format.Format(msg, args...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s, value: %s, message: %s", lead, n.Variant(), n.String(), n.Message())
	if cause := n.Cause(); cause != nil {
		fmt.Fprintf(&b, ", cause: %v", cause)
	}
	return b.String()
}

func logOutcome(ctx context.Context, logger Logger, level Level, n Nested, msg string, args ...any) {
	if isNil(logger) {
		return
	}
	defer func() {
		_ = recover()
	}()

	attrs := []any{
		"outcome_id", n.ID().String(),
		"variant", n.Variant().String(),
		"created_at", n.CreatedAt().Format(time.RFC3339Nano),
	}
	if n.Variant() == VariantFailure {
		attrs = append(attrs, "kind", n.Kind().String())
	}
	logger.Log(ctx, level, LogLine(n, msg, args...), n.Cause(), attrs...)
}
