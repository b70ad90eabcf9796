// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader and OSWriter to access the process environment via the standard
os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

	writer := &env.OSWriter{}
	err := writer.Setenv("MY_VAR", "value")

# Path Indirection

Some files are not named directly but through an environment variable, for
example the runner's GITHUB_ENV and GITHUB_OUTPUT files. LookupPath resolves
such a variable and fails with a *MissingVariableError when it is unset or
empty:

	path, err := env.LookupPath(reader, "GITHUB_OUTPUT")
	if errors.Is(err, env.ErrMissingVariable) {
		// not running inside a workflow
	}

# Testing

The Reader and Writer interfaces allow injecting mocks in tests to avoid
relying on real environment variables. Generated mocks are available in the
mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

	result := myFunc(mock)
*/
package env
