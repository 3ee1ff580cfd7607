// Copyright 2025 G-Core Innovations SARL

package diag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// LogHandler implements slog.Handler over the invocation diagnostic.
// Records are formatted as single lines and accumulated; every handled
// record sets the diagnostic to the full transcript so far, keeping the
// complete log visible under the channel's last-write-wins semantics.
type LogHandler struct {
	opts  handlerOptions
	attrs []slog.Attr
	group string

	// lines is shared across WithAttrs/WithGroup copies so the
	// transcript stays whole.
	lines *[]string
}

// HandlerOption configures a LogHandler.
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	level slog.Leveler
}

// WithLevel sets the minimum record level the handler reports. The
// default is slog.LevelInfo.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(o *handlerOptions) {
		o.level = level
	}
}

// NewLogHandler returns a LogHandler with the given options.
func NewLogHandler(opts ...HandlerOption) *LogHandler {
	options := handlerOptions{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&options)
	}
	return &LogHandler{
		opts:  options,
		lines: new([]string),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// Handle formats the record, appends it to the invocation transcript and
// sets the diagnostic.
func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Level.String())
	line.WriteByte(' ')
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		appendAttr(&line, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&line, h.group, attr)
		return true
	})

	*h.lines = append(*h.lines, line.String())
	setDiag(strings.Join(*h.lines, "\n"))
	return nil
}

func appendAttr(line *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if group != "" && key != "" {
		key = group + "." + key
	}
	fmt.Fprintf(line, " %s=%v", key, attr.Value)
}

// WithAttrs returns a LogHandler that includes the given attributes on
// every record. Attributes are qualified with the group in effect when
// they are added.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, attr := range attrs {
		if h.group != "" && attr.Key != "" {
			attr.Key = h.group + "." + attr.Key
		}
		h2.attrs = append(h2.attrs, attr)
	}
	return &h2
}

// WithGroup returns a LogHandler that qualifies attribute keys with the
// given group name.
func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h2.group != "" {
		h2.group += "." + name
	} else {
		h2.group = name
	}
	return &h2
}
