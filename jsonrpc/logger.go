package jsonrpc

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the diagnostic collaborator shared by the client correlator
// and the server dispatcher. Extra arguments are alternating key/value
// pairs. Implementations must not consult return values or panic.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogger returns a Logger writing structured JSON lines to w.
func NewLogger(w io.Writer) Logger {
	return &zeroLogger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// NewStderrLogger returns the Logger used by default when none is
// configured: structured output on the standard diagnostic stream.
func NewStderrLogger() Logger {
	return NewLogger(os.Stderr)
}

type zeroLogger struct {
	zl zerolog.Logger
}

func (l *zeroLogger) Info(msg string, args ...any) {
	l.zl.Info().Fields(fieldPairs(args)).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, args ...any) {
	l.zl.Warn().Fields(fieldPairs(args)).Msg(msg)
}

func (l *zeroLogger) Error(msg string, args ...any) {
	l.zl.Error().Fields(fieldPairs(args)).Msg(msg)
}

// fieldPairs folds alternating key/value arguments into a field map.
// Odd trailing values and non-string keys are kept, not dropped.
func fieldPairs(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	fields := make(map[string]any, len(args)/2+1)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	if len(args)%2 != 0 {
		fields["extra"] = args[len(args)-1]
	}
	return fields
}
