// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import "strings"

// ValidateKey reports whether key can be written to a property file and read
// back unchanged.
//
// A valid key:
//   - is not empty
//   - does not contain a newline
//   - does not contain "=" or "<<"
//   - does not end with "<", which would merge into a heredoc marker
func ValidateKey(key string) error {
	if key == "" {
		return &InvalidKeyError{Key: key, Reason: "key cannot be empty"}
	}

	if strings.Contains(key, "\n") {
		return &InvalidKeyError{Key: key, Reason: "key cannot contain a newline"}
	}

	if strings.Contains(key, "=") {
		return &InvalidKeyError{Key: key, Reason: `key cannot contain "="`}
	}

	if strings.Contains(key, "<<") || strings.HasSuffix(key, "<") {
		return &InvalidKeyError{Key: key, Reason: `key cannot contain "<<" or end with "<"`}
	}

	return nil
}
