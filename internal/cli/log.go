package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tooltipkit/pkg/observability"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// traceEvents routes pipeline, cache and HTTP events to l when it logs at
// debug level.
func traceEvents(l *log.Logger) bool {
	if l.GetLevel() > log.DebugLevel {
		return false
	}
	observability.NewLogHooks(l).Install()
	return true
}

// stopwatch reports how long a command step took.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// done logs msg at info level with the elapsed time and keyvals attached.
func (s stopwatch) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "took", s.elapsed())...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
