// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import (
	"errors"
	"fmt"
)

// Sentinel errors for property file operations.
var (
	// ErrMalformedRecord is returned when a record cannot be decoded, most
	// commonly a multi-line record whose closing delimiter is missing.
	ErrMalformedRecord = errors.New("malformed property record")

	// ErrInvalidKey is returned when a key cannot be represented in the
	// property file format.
	ErrInvalidKey = errors.New("invalid property key")

	// ErrDelimiterCollision is returned when no delimiter token could be
	// found that does not appear as a line of the value being encoded.
	ErrDelimiterCollision = errors.New("delimiter token collides with value")
)

// MalformedRecordError describes a record that failed to parse.
type MalformedRecordError struct {
	// Key is the name of the offending record.
	Key string
	// Offset is the byte offset in the input where the record starts.
	Offset int
	// Reason is a short human readable description of the problem.
	Reason string

	kind error
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("error parsing properties when reading %q at offset %d: %s", e.Key, e.Offset, e.Reason)
}

// Unwrap returns ErrMalformedRecord, together with ErrInvalidKey when the
// record was rejected because of its key.
func (e *MalformedRecordError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrMalformedRecord}
	}
	return []error{ErrMalformedRecord, e.kind}
}

// InvalidKeyError reports a key rejected by ValidateKey.
type InvalidKeyError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid property key %q: %s", e.Key, e.Reason)
}

// Unwrap returns ErrInvalidKey.
func (*InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
