// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package properties reads and writes the key/value property files a CI runner
uses to pass named values between steps, such as the files named by
GITHUB_ENV and GITHUB_OUTPUT.

# File Format

Each record is either a single line:

	name=value

or, when the value contains a newline, a heredoc bounded by a delimiter
token chosen by the writer:

	name<<ghadelimiter_5f0c...
	first line
	second line
	ghadelimiter_5f0c...

The heredoc form lets values hold arbitrary text, including lines that look
like other records. Encoding a Set and parsing the result yields the same
Set.

# Basic Usage

	set := properties.NewSet()
	set.Set("version", "1.2.3")
	set.Set("notes", "line one\nline two")

	text, err := properties.Stringify(set)
	// ...
	parsed, err := properties.Parse(text)

Files are handled with ReadFile, WriteFile and AppendFile. The EnvFile
variants resolve the path from an environment variable first through an
[env.Reader].

# Delimiter Tokens

Tokens come from a TokenGenerator. The default draws random UUIDs; tests can
supply a deterministic generator:

	codec := properties.NewCodec(properties.WithTokenGenerator(
		properties.TokenFunc(func() string { return "EOF" }),
	))

A token that appears as a line of the value is never used. Stringify draws
again, up to MaxTokenAttempts times, before failing with
ErrDelimiterCollision.

# Errors

Parse fails with a *MalformedRecordError when a heredoc has no closing
delimiter line or a record has a key that cannot be written back. Every
such error matches ErrMalformedRecord with errors.Is; key problems also
match ErrInvalidKey. Stringify rejects keys that cannot be read back with an
*InvalidKeyError, which matches ErrInvalidKey.
*/
package properties
