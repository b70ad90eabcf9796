// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package indent removes the common indentation from multi-line text, so
// messages can be written as indented raw string literals.
//
//	fmt.Print(indent.Trim(`
//		Error: title is not up to standards.
//
//		Title must be formatted as follows:
//		  <type>: <summary>
//	`))
package indent

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// leadingIndent matches a run of spaces or a run of tabs, never a mix.
var leadingIndent = regexp.MustCompile(`^(?: +|\t+)`)

// Trim strips leading and trailing blank lines and trailing whitespace, then
// removes the shortest indentation found on any indented, non-blank line
// from every line that starts with it. Lines without indentation do not
// affect the result. Trailing whitespace is removed from each line.
func Trim(s string) string {
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimRightFunc(s, unicode.IsSpace)

	lines := strings.Split(s, "\n")
	smallest := ""
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ind := leadingIndent.FindString(line)
		if ind == "" {
			continue
		}
		if smallest == "" || len(ind) < len(smallest) {
			smallest = ind
		}
	}
	if smallest == "" {
		return s
	}

	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(strings.TrimPrefix(line, smallest), unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}

// Trimf formats according to a format specifier and trims the result.
func Trimf(format string, args ...any) string {
	return Trim(fmt.Sprintf(format, args...))
}
