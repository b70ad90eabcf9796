// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_env.go -package=mocks Reader,Writer

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingVariable is returned when a required environment variable is
// unset or empty.
var ErrMissingVariable = errors.New("missing environment variable")

// MissingVariableError names the environment variable that was required.
type MissingVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing environment variable '%s'", e.Name)
}

// Unwrap returns ErrMissingVariable.
func (*MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// Writer defines an interface for changing environment variables
type Writer interface {
	Setenv(key, value string) error
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// OSWriter implements Writer using the standard os package
type OSWriter struct{}

// Setenv sets the environment variable of the current process
func (*OSWriter) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// LookupPath returns the file path held by the environment variable key.
// It returns a *MissingVariableError if the variable is unset or empty.
func LookupPath(r Reader, key string) (string, error) {
	path := r.Getenv(key)
	if path == "" {
		return "", &MissingVariableError{Name: key}
	}
	return path, nil
}
