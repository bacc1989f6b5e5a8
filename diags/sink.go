package diags

import (
	"context"
	"log/slog"

	"github.com/reusee/unasm/logs"
)

type Sink interface {
	Emit(Diagnostic)
}

type SinkFunc func(Diagnostic)

var _ Sink = SinkFunc(nil)

func (f SinkFunc) Emit(d Diagnostic) {
	f(d)
}

var Discard Sink = SinkFunc(func(Diagnostic) {})

func OrDiscard(sink Sink) Sink {
	if sink == nil {
		return Discard
	}
	return sink
}

// Collector keeps diagnostics in emission order. Not safe for concurrent use.
type Collector struct {
	diagnostics []Diagnostic
}

var _ Sink = new(Collector)

func (c *Collector) Emit(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

func (c *Collector) Count(severity Severity) (n int) {
	for _, d := range c.diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return
}

type Multi []Sink

var _ Sink = Multi(nil)

func (m Multi) Emit(d Diagnostic) {
	for _, sink := range m {
		if sink != nil {
			sink.Emit(d)
		}
	}
}

// LogSink forwards diagnostics to a structured logger.
type LogSink struct {
	Ctx    context.Context
	Logger logs.Logger
}

var _ Sink = LogSink{}

func (l LogSink) Emit(d Diagnostic) {
	level := slog.LevelWarn
	if d.Severity == Error {
		level = slog.LevelError
	}
	ctx := l.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	l.Logger.Log(ctx, level, d.Message,
		"code", string(d.Code),
		"line", d.Pos.Line,
		"column", d.Pos.Column,
	)
}
