package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

const (
	LoggingFormatJson = "json"
	LoggingFormatText = "text"
)

// NewLogger returns a json logger readable by GCP log ingestion, or a human readable one for
// local development.
func NewLogger(format string) *slog.Logger {
	return newLogger(os.Stdout, format, slog.LevelDebug)
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	if format == LoggingFormatJson {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: GCPLoggerAttributeReplacer,
		}))
	}
	return slog.New(LocalDevHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: level},
		UseColor: true,
	}.NewLocalDevHandler(w))
}

// GCPLoggerAttributeReplacer renames the message and level attributes to the keys
// stackdriver parses.
func GCPLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		level, _ := a.Value.Any().(slog.Level)
		a.Value = slog.StringValue(gcpSeverity(level))
	}
	return a
}

func gcpSeverity(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARNING"
	default:
		return "ERROR"
	}
}

// LocalDevHandler prints "<time> <level> <message>" followed by the attributes in text form.
type LocalDevHandler struct {
	opts            LocalDevHandlerOptions
	internalHandler slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

type LocalDevHandlerOptions struct {
	SlogOpts slog.HandlerOptions
	UseColor bool
}

func NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	return LocalDevHandlerOptions{}.NewLocalDevHandler(w)
}

func (opts LocalDevHandlerOptions) NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	internalOpts := opts.SlogOpts
	internalOpts.AddSource = false
	internalOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}
		if opts.SlogOpts.ReplaceAttr != nil {
			return opts.SlogOpts.ReplaceAttr(groups, a)
		}
		return a
	}
	return &LocalDevHandler{
		opts:            opts,
		internalHandler: slog.NewTextHandler(w, &internalOpts),
		mu:              &sync.Mutex{},
		w:               w,
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.internalHandler.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String()
	if h.opts.UseColor {
		level = addColorToLevel(r.Level)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %s ", r.Time.Format(time.RFC3339), level, r.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.internalHandler.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{opts: h.opts, internalHandler: h.internalHandler.WithAttrs(attrs), mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{opts: h.opts, internalHandler: h.internalHandler.WithGroup(name), mu: h.mu, w: h.w}
}

type Color uint8

const (
	Red     Color = 31
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
)

func (c Color) Add(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", uint8(c), s)
}

func addColorToLevel(level slog.Level) string {
	color := Red
	switch level {
	case slog.LevelDebug:
		color = Magenta
	case slog.LevelInfo:
		color = Blue
	case slog.LevelWarn:
		color = Yellow
	}
	return color.Add(level.String())
}
