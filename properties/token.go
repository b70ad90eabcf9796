// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import "github.com/google/uuid"

// DelimiterPrefix is prepended to generated heredoc delimiter tokens.
const DelimiterPrefix = "ghadelimiter_"

// MaxTokenAttempts bounds how many tokens are drawn for a single value
// before Stringify gives up with ErrDelimiterCollision.
const MaxTokenAttempts = 8

// TokenGenerator produces delimiter tokens for multi-line records.
type TokenGenerator interface {
	Token() string
}

// TokenFunc adapts an ordinary function to the TokenGenerator interface.
type TokenFunc func() string

// Token calls f.
func (f TokenFunc) Token() string {
	return f()
}

// UUIDTokens generates random tokens of the form "ghadelimiter_<uuid>".
type UUIDTokens struct{}

// Token returns a new random token.
func (UUIDTokens) Token() string {
	return DelimiterPrefix + uuid.NewString()
}
