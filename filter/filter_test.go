// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/actionfiles/properties"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		expr  string
		key   string
		value string
		want  bool
	}{
		{name: "key equality", expr: `key == "A"`, key: "A", value: "x", want: true},
		{name: "key mismatch", expr: `key == "A"`, key: "B", value: "x", want: false},
		{name: "prefix", expr: `key.startsWith("DEPLOY_")`, key: "DEPLOY_ENV", want: true},
		{name: "multi-line value", expr: `value.contains("\n")`, value: "a\nb", want: true},
		{name: "string extension", expr: `value.lowerAscii() == "true"`, value: "TRUE", want: true},
		{name: "regex", expr: `key.matches("^[A-Z_]+$")`, key: "lower", want: false},
		{name: "constant", expr: `true`, want: true},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, expr.Source())

			got, err := expr.Match(tt.key, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	set := properties.NewSet()
	set.Set("KEEP_1", "a")
	set.Set("DROP", "b")
	set.Set("KEEP_2", "c\nd")
	set.Set("KEEP_0", "e")

	expr, err := NewEngine().Compile(`key.startsWith("KEEP_")`)
	require.NoError(t, err)

	got, err := expr.Apply(set)
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP_1", "KEEP_2", "KEEP_0"}, got.Keys())
	v, _ := got.Get("KEEP_2")
	assert.Equal(t, "c\nd", v)
	assert.Equal(t, 4, set.Len(), "input set must not change")
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		stage   Stage
		wantErr error
	}{
		{name: "syntax", expr: `key ==`, stage: StageParse, wantErr: ErrInvalidExpression},
		{name: "unknown variable", expr: `name == "x"`, stage: StageCheck, wantErr: ErrInvalidExpression},
		{name: "type mismatch", expr: `key == 1`, stage: StageCheck, wantErr: ErrInvalidExpression},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := engine.Compile(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.stage, ce.Stage)
			assert.Equal(t, tt.expr, ce.Expression)
			assert.NotEmpty(t, ce.Issues)
			assert.Contains(t, ce.Error(), string(tt.stage))
		})
	}
}

func TestCompileRejectsNonBool(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().Compile(`key + value`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidExpression)
	assert.ErrorIs(t, err, ErrNotBoolean)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	assert.NoError(t, engine.Check(`value != ""`))
	assert.ErrorIs(t, engine.Check(`value !=`), ErrInvalidExpression)
}

func TestMaxExpressionLength(t *testing.T) {
	t.Parallel()

	engine := NewEngine().WithMaxExpressionLength(10)
	_, err := engine.Compile(`key == "` + strings.Repeat("x", 20) + `"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidExpression)
	assert.Contains(t, err.Error(), "exceeds maximum of 10")
}

func TestCostLimit(t *testing.T) {
	t.Parallel()

	engine := NewEngine().WithCostLimit(1)
	expr, err := engine.Compile(`value.split(",").all(p, p.size() > 0 && p.contains("a"))`)
	require.NoError(t, err)

	_, err = expr.Match("K", strings.Repeat("a,", 100))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvaluation))
}

func TestCompileErrorAsJSON(t *testing.T) {
	t.Parallel()

	_, err := NewEngine().Compile(`missing == "x"`)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)

	var decoded struct {
		Stage      string  `json:"stage"`
		Expression string  `json:"expression"`
		Issues     []Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(ce.AsJSON()), &decoded))
	assert.Equal(t, "check", decoded.Stage)
	assert.Equal(t, `missing == "x"`, decoded.Expression)
	require.NotEmpty(t, decoded.Issues)
	assert.Contains(t, decoded.Issues[0].Msg, "missing")
	assert.Equal(t, 1, decoded.Issues[0].Line)
}

func TestEngineConcurrentCompile(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Compile(`key != ""`)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
