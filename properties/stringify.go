// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import (
	"fmt"
	"strings"
)

// Stringify encodes set in iteration order.
//
// Values without a newline are written as "key=value". Values with a
// newline are written as a heredoc bounded by a fresh token from the
// Codec's TokenGenerator:
//
//	key<<TOKEN
//	value
//	TOKEN
//
// Every key is checked with ValidateKey before anything is written.
func (c *Codec) Stringify(set *Set) (string, error) {
	for k := range set.All() {
		if err := ValidateKey(k); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	for k, v := range set.All() {
		if !strings.Contains(v, "\n") {
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(v)
			b.WriteByte('\n')
			continue
		}

		token, err := c.delimiterFor(v)
		if err != nil {
			return "", fmt.Errorf("encoding %q: %w", k, err)
		}
		b.WriteString(k)
		b.WriteString("<<")
		b.WriteString(token)
		b.WriteByte('\n')
		b.WriteString(v)
		b.WriteByte('\n')
		b.WriteString(token)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// delimiterFor draws tokens until one does not occur as a line of value.
func (c *Codec) delimiterFor(value string) (string, error) {
	for range MaxTokenAttempts {
		token := c.tokens.Token()
		if usableToken(token, value) {
			return token, nil
		}
		c.logger.Debug("delimiter token collides with value, drawing another")
	}
	return "", fmt.Errorf("%w after %d attempts", ErrDelimiterCollision, MaxTokenAttempts)
}

func usableToken(token, value string) bool {
	if token == "" || strings.Contains(token, "\n") {
		return false
	}
	return !strings.Contains("\n"+value+"\n", "\n"+token+"\n")
}
