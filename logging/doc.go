// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory.

The properties and workflow packages accept a *slog.Logger through their
WithLogger options; this package builds one with consistent defaults.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)
	codec := properties.NewCodec(properties.WithLogger(logger))

# Workflow Commands

Inside a CI job, [FormatActions] writes each record as a workflow command
on the configured output, so warnings and errors are surfaced as
annotations:

	logger := logging.New(logging.WithFormat(logging.FormatActions), logging.WithOutput(os.Stdout))
	logger.Warn("key redefined", "key", "VERSION")
	// ::warning::key redefined key=VERSION

Messages and attribute values are escaped so that a record always occupies
a single line.

# Handler Access

Use [NewHandler] when you need to wrap the handler with middleware.
*/
package logging
