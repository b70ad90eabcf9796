// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/actionfiles/env"
	"github.com/stacklok/actionfiles/env/mocks"
	"github.com/stacklok/actionfiles/properties"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		EnvFile:    filepath.Join(dir, "github_env"),
		OutputFile: filepath.Join(dir, "github_output"),
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv(EnvFileVar).Return("/runner/env")
	reader.EXPECT().Getenv(OutputFileVar).Return("")

	cfg := ConfigFromEnv(reader)
	assert.Equal(t, Config{EnvFile: "/runner/env"}, cfg)
}

func TestWorkflow_Outputs(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	wf := New(cfg)

	require.NoError(t, wf.SetOutput("digest", "sha256:abc"))
	require.NoError(t, wf.SetOutput("notes", "first\nsecond"))

	outputs, err := wf.Outputs()
	require.NoError(t, err)
	assert.Equal(t, []string{"digest", "notes"}, outputs.Keys())
	assert.Equal(t, map[string]string{"digest": "sha256:abc", "notes": "first\nsecond"}, outputs.Map())

	replacement := properties.NewSet()
	replacement.Set("only", "one")
	require.NoError(t, wf.SaveOutputs(replacement))

	outputs, err = wf.Outputs()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"only": "one"}, outputs.Map())

	_, err = os.Stat(cfg.EnvFile)
	assert.True(t, errors.Is(err, os.ErrNotExist), "outputs must not touch the environment file")
}

func TestWorkflow_Environment(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	wf := New(cfg)

	first := properties.NewSet()
	first.Set("A", "1")
	require.NoError(t, wf.SaveEnvironment(first))

	second := properties.NewSet()
	second.Set("B", "2")
	require.NoError(t, wf.AppendEnvironment(second))

	got, err := wf.Environment()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got.Keys())
}

func TestWorkflow_SetEnvironmentVariable(t *testing.T) {
	t.Parallel()

	t.Run("sets the process variable and records it", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		cfg := testConfig(t)

		writer := mocks.NewMockWriter(ctrl)
		writer.EXPECT().Setenv("TOKEN_PATH", "/tmp/token").Return(nil)

		wf := New(cfg, WithEnvWriter(writer))
		require.NoError(t, wf.SetEnvironmentVariable("TOKEN_PATH", "/tmp/token"))

		data, err := os.ReadFile(cfg.EnvFile)
		require.NoError(t, err)
		assert.Equal(t, "TOKEN_PATH=/tmp/token\n", string(data))
	})

	t.Run("invalid key changes nothing", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		cfg := testConfig(t)

		// No Setenv expectation: any call fails the test.
		writer := mocks.NewMockWriter(ctrl)

		wf := New(cfg, WithEnvWriter(writer))
		err := wf.SetEnvironmentVariable("BAD=KEY", "x")
		assert.True(t, errors.Is(err, properties.ErrInvalidKey))

		_, statErr := os.Stat(cfg.EnvFile)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("process environment failure is returned", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		cfg := testConfig(t)
		boom := errors.New("boom")

		writer := mocks.NewMockWriter(ctrl)
		writer.EXPECT().Setenv("KEY", "v").Return(boom)

		wf := New(cfg, WithEnvWriter(writer))
		err := wf.SetEnvironmentVariable("KEY", "v")
		assert.True(t, errors.Is(err, boom))

		data, readErr := os.ReadFile(cfg.EnvFile)
		require.NoError(t, readErr)
		assert.Equal(t, "KEY=v\n", string(data))
	})

	t.Run("file failure leaves the process environment alone", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		// A directory cannot be opened for appending.
		cfg := Config{EnvFile: t.TempDir()}

		// No Setenv expectation: any call fails the test.
		writer := mocks.NewMockWriter(ctrl)

		wf := New(cfg, WithEnvWriter(writer))
		err := wf.SetEnvironmentVariable("KEY", "v")
		require.Error(t, err)
	})
}

func TestWorkflow_MissingChannel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	writer := mocks.NewMockWriter(ctrl)
	wf := New(Config{}, WithEnvWriter(writer))
	set := properties.NewSet()
	set.Set("k", "v")

	tests := []struct {
		name    string
		call    func() error
		wantVar string
	}{
		{"Environment", func() error { _, err := wf.Environment(); return err }, EnvFileVar},
		{"SaveEnvironment", func() error { return wf.SaveEnvironment(set) }, EnvFileVar},
		{"AppendEnvironment", func() error { return wf.AppendEnvironment(set) }, EnvFileVar},
		{"SetEnvironmentVariable", func() error { return wf.SetEnvironmentVariable("k", "v") }, EnvFileVar},
		{"Outputs", func() error { _, err := wf.Outputs(); return err }, OutputFileVar},
		{"SaveOutputs", func() error { return wf.SaveOutputs(set) }, OutputFileVar},
		{"AppendOutputs", func() error { return wf.AppendOutputs(set) }, OutputFileVar},
		{"SetOutput", func() error { return wf.SetOutput("k", "v") }, OutputFileVar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, env.ErrMissingVariable))

			var missing *env.MissingVariableError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantVar, missing.Name)
		})
	}
}
