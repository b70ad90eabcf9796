// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"fmt"
	"log/slog"

	"github.com/stacklok/actionfiles/env"
	"github.com/stacklok/actionfiles/properties"
)

// Environment variables the runner uses to name the channel files.
const (
	EnvFileVar    = "GITHUB_ENV"
	OutputFileVar = "GITHUB_OUTPUT"
)

// Config names the files backing each channel. An empty field means the
// channel is unavailable.
type Config struct {
	// EnvFile holds environment variables exported to later steps.
	EnvFile string
	// OutputFile holds the outputs of the current step.
	OutputFile string
}

// ConfigFromEnv builds a Config from the runner's environment variables.
// Unset variables leave the corresponding field empty; the error is raised
// when the channel is used.
func ConfigFromEnv(r env.Reader) Config {
	return Config{
		EnvFile:    r.Getenv(EnvFileVar),
		OutputFile: r.Getenv(OutputFileVar),
	}
}

// Workflow reads and writes the environment and outputs channels.
type Workflow struct {
	cfg    Config
	codec  *properties.Codec
	env    env.Writer
	logger *slog.Logger
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithCodec sets the codec used for the channel files.
func WithCodec(c *properties.Codec) Option {
	return func(w *Workflow) {
		w.codec = c
	}
}

// WithEnvWriter sets where SetEnvironmentVariable writes the process
// environment. The default is env.OSWriter.
func WithEnvWriter(ew env.Writer) Option {
	return func(w *Workflow) {
		w.env = ew
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = l
	}
}

// New creates a Workflow for the files named in cfg.
func New(cfg Config, opts ...Option) *Workflow {
	w := &Workflow{
		cfg:    cfg,
		codec:  properties.NewCodec(),
		env:    &env.OSWriter{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workflow) envFile() (string, error) {
	if w.cfg.EnvFile == "" {
		return "", &env.MissingVariableError{Name: EnvFileVar}
	}
	return w.cfg.EnvFile, nil
}

func (w *Workflow) outputFile() (string, error) {
	if w.cfg.OutputFile == "" {
		return "", &env.MissingVariableError{Name: OutputFileVar}
	}
	return w.cfg.OutputFile, nil
}

// Environment returns the variables recorded in the environment file.
func (w *Workflow) Environment() (*properties.Set, error) {
	path, err := w.envFile()
	if err != nil {
		return nil, err
	}
	return w.codec.ReadFile(path)
}

// SaveEnvironment replaces the environment file with set.
func (w *Workflow) SaveEnvironment(set *properties.Set) error {
	path, err := w.envFile()
	if err != nil {
		return err
	}
	return w.codec.WriteFile(path, set)
}

// AppendEnvironment adds set to the environment file.
func (w *Workflow) AppendEnvironment(set *properties.Set) error {
	path, err := w.envFile()
	if err != nil {
		return err
	}
	return w.codec.AppendFile(path, set)
}

// SetEnvironmentVariable records key in the environment file so later steps
// see it, then sets it in the current process. The process environment is
// only changed once the record has been written.
func (w *Workflow) SetEnvironmentVariable(key, value string) error {
	if err := properties.ValidateKey(key); err != nil {
		return err
	}
	path, err := w.envFile()
	if err != nil {
		return err
	}

	set := properties.NewSet()
	set.Set(key, value)
	if err := w.codec.AppendFile(path, set); err != nil {
		return err
	}
	if err := w.env.Setenv(key, value); err != nil {
		return fmt.Errorf("setting %s in the process environment: %w", key, err)
	}
	w.logger.Debug("exported environment variable", "key", key)
	return nil
}

// Outputs returns the values recorded in the outputs file.
func (w *Workflow) Outputs() (*properties.Set, error) {
	path, err := w.outputFile()
	if err != nil {
		return nil, err
	}
	return w.codec.ReadFile(path)
}

// SaveOutputs replaces the outputs file with set.
func (w *Workflow) SaveOutputs(set *properties.Set) error {
	path, err := w.outputFile()
	if err != nil {
		return err
	}
	return w.codec.WriteFile(path, set)
}

// AppendOutputs adds set to the outputs file.
func (w *Workflow) AppendOutputs(set *properties.Set) error {
	path, err := w.outputFile()
	if err != nil {
		return err
	}
	return w.codec.AppendFile(path, set)
}

// SetOutput records a single output value.
func (w *Workflow) SetOutput(key, value string) error {
	set := properties.NewSet()
	set.Set(key, value)
	if err := w.AppendOutputs(set); err != nil {
		return err
	}
	w.logger.Debug("set output", "key", key)
	return nil
}
