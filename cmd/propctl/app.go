// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/stacklok/actionfiles/env"
	"github.com/stacklok/actionfiles/filter"
	"github.com/stacklok/actionfiles/indent"
	"github.com/stacklok/actionfiles/logger"
	"github.com/stacklok/actionfiles/logging"
	"github.com/stacklok/actionfiles/properties"
	"github.com/stacklok/actionfiles/workflow"
)

var errKeyNotFound = errors.New("key not found")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    env.Reader

	log   logr.Logger
	slog  *slog.Logger
	codec *properties.Codec
}

// target selects the property file a command works on.
type target struct {
	file    string
	envVar  string
	channel string
}

type globalFlags struct {
	logFormat string
	debug     bool
}

func (a *app) newFlagSet(name string) (*pflag.FlagSet, *globalFlags) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.SortFlags = false
	g := &globalFlags{}
	fs.StringVar(&g.logFormat, "log-format", "text", "library log format: text, json or actions")
	fs.BoolVar(&g.debug, "debug", false, "enable debug logging (also enabled by RUNNER_DEBUG=1)")
	return fs, g
}

func (t *target) register(fs *pflag.FlagSet, envFlag string) {
	fs.StringVar(&t.file, "file", "", "property file path")
	fs.StringVar(&t.envVar, envFlag, "", "environment variable holding the property file path")
	fs.StringVar(&t.channel, "channel", "", "runner channel: env or outputs")
}

func (t *target) validate() error {
	n := 0
	for _, v := range []string{t.file, t.envVar, t.channel} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return errors.New("exactly one of --file, the environment variable flag or --channel is required")
	}
	if t.channel != "" && t.channel != "env" && t.channel != "outputs" {
		return fmt.Errorf("unknown channel %q (want env or outputs)", t.channel)
	}
	return nil
}

// setup configures logging and the codec shared by a command.
func (a *app) setup(g *globalFlags, codecOpts ...properties.Option) error {
	format, err := logging.ParseFormat(g.logFormat)
	if err != nil {
		return err
	}

	debug := logger.AnyDebug{logger.StaticDebug(g.debug), &logger.RunnerDebug{Env: a.env}}
	if err := logger.InitializeWithOptions(a.env, debug); err != nil {
		return err
	}
	a.log = logger.NewLogr()

	level := slog.LevelInfo
	if debug.IsDebug() {
		level = slog.LevelDebug
	}
	a.slog = logging.New(
		logging.WithFormat(format),
		logging.WithLevel(level),
		logging.WithOutput(a.stderr),
	)

	a.codec = properties.NewCodec(append(codecOpts, properties.WithLogger(a.slog))...)
	return nil
}

func (a *app) workflow() *workflow.Workflow {
	return workflow.New(
		workflow.ConfigFromEnv(a.env),
		workflow.WithCodec(a.codec),
		workflow.WithLogger(a.slog),
	)
}

func (a *app) read(t *target) (*properties.Set, error) {
	a.log.V(1).Info("reading properties", "file", t.file, "env", t.envVar, "channel", t.channel)
	switch {
	case t.file != "":
		return a.codec.ReadFile(t.file)
	case t.envVar != "":
		return a.codec.ReadEnvFile(a.env, t.envVar)
	case t.channel == "env":
		return a.workflow().Environment()
	default:
		return a.workflow().Outputs()
	}
}

func (a *app) get(args []string) error {
	fs, g := a.newFlagSet("get")
	var (
		t      target
		format string
		expr   string
	)
	t.register(fs, "from-env")
	fs.StringVar(&format, "format", "properties", "output format: properties, json or yaml")
	fs.StringVar(&expr, "filter", "", "CEL expression over key and value selecting the entries to print")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("get takes at most one KEY, got %d arguments", fs.NArg())
	}
	if err := t.validate(); err != nil {
		return err
	}
	if err := a.setup(g); err != nil {
		return err
	}

	set, err := a.read(&t)
	if err != nil {
		return err
	}

	if expr != "" {
		compiled, err := filter.NewEngine().Compile(expr)
		if err != nil {
			return err
		}
		if set, err = compiled.Apply(set); err != nil {
			return err
		}
		a.log.V(1).Info("filtered properties", "expression", expr, "matched", set.Len())
	}

	if fs.NArg() == 1 {
		key := fs.Arg(0)
		v, ok := set.Get(key)
		if !ok {
			return fmt.Errorf("%w: %s", errKeyNotFound, key)
		}
		_, err := fmt.Fprintln(a.stdout, v)
		return err
	}

	return a.print(set, format)
}

func (a *app) write(name string, args []string, appendMode bool) error {
	fs, g := a.newFlagSet(name)
	var (
		t    target
		lock bool
	)
	t.register(fs, "to-env")
	if appendMode {
		fs.BoolVar(&lock, "lock", false, "hold an advisory lock on the file while appending")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%s needs at least one KEY=VALUE argument", name)
	}
	if err := t.validate(); err != nil {
		return err
	}
	if err := a.setup(g, properties.WithFileLock(lock)); err != nil {
		return err
	}

	set, err := parseAssignments(fs.Args())
	if err != nil {
		return err
	}

	if appendMode {
		err = a.appendSet(&t, set)
	} else {
		err = a.saveSet(&t, set)
	}
	if err != nil {
		return err
	}
	a.log.V(1).Info("wrote properties", "command", name, "count", set.Len())
	return nil
}

func (a *app) saveSet(t *target, set *properties.Set) error {
	switch {
	case t.file != "":
		return a.codec.WriteFile(t.file, set)
	case t.envVar != "":
		return a.codec.WriteEnvFile(a.env, t.envVar, set)
	case t.channel == "env":
		return a.workflow().SaveEnvironment(set)
	default:
		return a.workflow().SaveOutputs(set)
	}
}

func (a *app) appendSet(t *target, set *properties.Set) error {
	switch {
	case t.file != "":
		return a.codec.AppendFile(t.file, set)
	case t.envVar != "":
		return a.codec.AppendEnvFile(a.env, t.envVar, set)
	case t.channel == "env":
		return a.workflow().AppendEnvironment(set)
	default:
		return a.workflow().AppendOutputs(set)
	}
}

// parseAssignments turns KEY=VALUE arguments into a set. A value starting
// with @ names a file whose contents become the value.
func parseAssignments(args []string) (*properties.Set, error) {
	set := properties.NewSet()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not of the form KEY=VALUE", arg)
		}
		if path, isFile := strings.CutPrefix(value, "@"); isFile {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading value of %s: %w", key, err)
			}
			value = string(data)
		}
		set.Set(key, value)
	}
	return set, nil
}

func (a *app) trimIndent(args []string) error {
	fs, _ := a.newFlagSet("trim-indent")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("trim-indent reads stdin and takes no arguments")
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, indent.Trim(string(data)))
	return err
}
