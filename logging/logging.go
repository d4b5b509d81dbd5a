// Package logging provides the compact line-oriented slog handler used by
// the command-line driver and the HTTP server.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// TimeFormat prefixes every line.
const TimeFormat = "2006/01/02 15:04:05"

// Handler writes "time LEVEL message key=value ..." lines. Attributes added
// with WithAttrs come before the record's own, groups prefix keys with
// "group.".
type Handler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	out    io.Writer
	attrs  []slog.Attr
	prefix string
}

// NewHandler returns a Handler writing to o. A nil opts logs Info and above.
func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	var level slog.Leveler = slog.LevelInfo
	if opts.Level != nil {
		level = opts.Level
	}

	return &Handler{level: level, mu: &sync.Mutex{}, out: o}
}

// Enabled reports whether level meets the handler's minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return c
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = h.prefix + name + "."

	return c
}

// Handle formats r and writes it as one line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format(TimeFormat))
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())

	return err
}

func (h *Handler) clone() *Handler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)

	return &c
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix+a.Key+".", ga)
		}
		return
	}

	v := a.Value.String()
	if strings.ContainsAny(v, " \t\n\"=") {
		v = fmt.Sprintf("%q", v)
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix + a.Key)
	sb.WriteByte('=')
	sb.WriteString(v)
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", name)
	}

	return l, nil
}

// New returns a logger for w at the named level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: l})), nil
}
