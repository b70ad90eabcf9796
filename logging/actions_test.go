// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionsHandler_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, "::debug::msg\n"},
		{"info", slog.LevelInfo, "::notice::msg\n"},
		{"warn", slog.LevelWarn, "::warning::msg\n"},
		{"error", slog.LevelError, "::error::msg\n"},
		{"above error", slog.LevelError + 4, "::error::msg\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewActionsHandler(&buf, slog.LevelDebug))

			logger.Log(context.Background(), tc.level, "msg")

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestActionsHandler_Escaping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewActionsHandler(&buf, nil))

	logger.Warn("100% done\r\nnext", "value", "a\nb")

	assert.Equal(t, "::warning::100%25 done%0D%0Anext value=a%0Ab\n", buf.String())
}

func TestActionsHandler_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithFormat(FormatActions), WithOutput(&buf))

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	var lvl slog.LevelVar
	lvl.Set(slog.LevelDebug)
	logger = New(WithFormat(FormatActions), WithLevel(&lvl), WithOutput(&buf))
	logger.Debug("shown")
	assert.Equal(t, "::debug::shown\n", buf.String())
}

func TestActionsHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewActionsHandler(&buf, nil)).
		With("path", "/tmp/out").
		WithGroup("set").
		With("count", 2)

	logger.Info("wrote", slog.Group("key", slog.String("name", "A")), "empty", "")

	assert.Equal(t,
		"::notice::wrote path=/tmp/out set.count=2 set.key.name=A set.empty=\n",
		buf.String())
}

func TestActionsHandler_EmptyGroupIsIgnored(t *testing.T) {
	t.Parallel()

	h := NewActionsHandler(&bytes.Buffer{}, nil)
	assert.Same(t, h, h.WithGroup(""))
}
