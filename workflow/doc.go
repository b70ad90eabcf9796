// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package workflow exposes the two property file channels a runner gives each
step: the environment file, whose entries become environment variables of
later steps, and the outputs file, whose entries become step outputs.

The file locations are passed in explicitly through a Config instead of being
read from the process environment on every call:

	cfg := workflow.ConfigFromEnv(&env.OSReader{})
	wf := workflow.New(cfg)

	if err := wf.SetOutput("digest", digest); err != nil {
		return err
	}

A channel whose path is empty fails with an *env.MissingVariableError naming
GITHUB_ENV or GITHUB_OUTPUT before any file is touched.

# Stability

This package is Alpha stability. The API may change without notice.
*/
package workflow
