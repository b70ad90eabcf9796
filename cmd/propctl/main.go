// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command propctl reads and writes runner property files.
//
// Usage:
//
//	propctl get [--file P | --from-env VAR | --channel env|outputs] [--format properties|json|yaml] [--filter EXPR] [KEY]
//	propctl set [--file P | --to-env VAR | --channel env|outputs] KEY=VALUE...
//	propctl append [--file P | --to-env VAR | --channel env|outputs] [--lock] KEY=VALUE...
//	propctl trim-indent < template
//
// A value of the form @path is read from the named file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stacklok/actionfiles/env"
)

var errUsage = errors.New("usage: propctl <get|set|append|trim-indent> [flags] [args]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, &env.OSReader{}); err != nil {
		fmt.Fprintf(os.Stderr, "propctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, envReader env.Reader) error {
	if len(args) == 0 {
		return errUsage
	}

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, env: envReader}
	switch args[0] {
	case "get":
		return a.get(args[1:])
	case "set":
		return a.write(args[0], args[1:], false)
	case "append":
		return a.write(args[0], args[1:], true)
	case "trim-indent":
		return a.trimIndent(args[1:])
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(stdout, errUsage)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}
