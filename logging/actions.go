// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ActionsHandler is a [log/slog.Handler] that writes one workflow command
// per record. The time attribute is omitted since the runner stamps every
// line itself.
type ActionsHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	attrs  string
	prefix string
}

// NewActionsHandler creates an ActionsHandler writing to out. A nil level
// means [log/slog.LevelInfo].
func NewActionsHandler(out io.Writer, level slog.Leveler) *ActionsHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ActionsHandler{mu: &sync.Mutex{}, out: out, level: level}
}

// Enabled implements [log/slog.Handler].
func (h *ActionsHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle implements [log/slog.Handler].
func (h *ActionsHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})

	line := "::" + command(r.Level) + "::" + escapeData(b.String()) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

// WithAttrs implements [log/slog.Handler].
func (h *ActionsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	h2 := *h
	h2.attrs = h.attrs + b.String()
	return &h2
}

// WithGroup implements [log/slog.Handler].
func (h *ActionsHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func command(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warning"
	case l >= slog.LevelInfo:
		return "notice"
	default:
		return "debug"
	}
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

var dataEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// escapeData encodes a workflow command message so the runner reads it as a
// single line.
func escapeData(s string) string {
	return dataEscaper.Replace(s)
}
