package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// logrFor bridges l into a logr.Logger for library packages. Every logr
// record is written at debug level, so it only shows with --verbose.
func logrFor(l *log.Logger) logr.Logger {
	return funcr.New(func(prefix, args string) {
		l.Debug(strings.TrimSpace(prefix + " " + args))
	}, funcr.Options{Verbosity: 1})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time attached.
func (p *progress) done(msg string, keyvals ...interface{}) {
	p.logger.Debug(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}
