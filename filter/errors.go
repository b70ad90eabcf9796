// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for filter expressions.
var (
	// ErrInvalidExpression is returned when a filter fails to parse or type check.
	ErrInvalidExpression = errors.New("invalid filter expression")

	// ErrEvaluation is returned when a filter fails at evaluation time.
	ErrEvaluation = errors.New("filter evaluation failed")

	// ErrNotBoolean is returned when a filter does not produce a bool.
	ErrNotBoolean = errors.New("filter must evaluate to a bool")
)

// Stage identifies the compilation step that rejected an expression.
type Stage string

const (
	// StageParse indicates a syntax error.
	StageParse Stage = "parse"
	// StageCheck indicates a type error, such as an unknown variable.
	StageCheck Stage = "check"
)

// Issue is one problem reported for an expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// CompileError reports why an expression could not be compiled.
type CompileError struct {
	Stage      Stage   `json:"stage"`
	Expression string  `json:"expression"`
	Issues     []Issue `json:"issues,omitempty"`

	err error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s error in filter %q: %s", e.Stage, e.Expression, e.err)
}

// Unwrap returns the underlying error, which matches ErrInvalidExpression.
func (e *CompileError) Unwrap() error {
	return e.err
}

// AsJSON returns the error details as a JSON string.
func (e *CompileError) AsJSON() string {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(data)
}

func newCompileError(stage Stage, expr string, issues *cel.Issues) error {
	ce := &CompileError{
		Stage:      stage,
		Expression: expr,
		Issues:     make([]Issue, 0, len(issues.Errors())),
		err:        fmt.Errorf("%w: %w", ErrInvalidExpression, issues.Err()),
	}
	for _, e := range issues.Errors() {
		ce.Issues = append(ce.Issues, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return ce
}
