// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import "log/slog"

// Codec parses and serializes property files.
// A Codec is stateless apart from its options and may be shared.
type Codec struct {
	tokens   TokenGenerator
	logger   *slog.Logger
	lockFile bool
}

// Option configures a Codec created by NewCodec.
type Option func(*Codec)

// WithTokenGenerator sets the source of heredoc delimiter tokens.
// The default is UUIDTokens.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(c *Codec) {
		c.tokens = g
	}
}

// WithLogger sets the logger used for debug output.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		c.logger = l
	}
}

// WithFileLock makes AppendFile hold an advisory lock on the target file
// while appending. Only writers that also lock are excluded.
func WithFileLock(enabled bool) Option {
	return func(c *Codec) {
		c.lockFile = enabled
	}
}

// NewCodec creates a Codec with the given options applied.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		tokens: UUIDTokens{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Parse decodes data using a Codec with default options.
func Parse(data string) (*Set, error) {
	return defaultCodec.Parse(data)
}

// Stringify encodes set using a Codec with default options.
func Stringify(set *Set) (string, error) {
	return defaultCodec.Stringify(set)
}
