// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/stacklok/actionfiles/properties"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a filter.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit is the runtime cost limit for evaluating a filter
	// against one property.
	DefaultCostLimit = 100000
)

// Engine compiles filter expressions. It is safe for concurrent use.
type Engine struct {
	once sync.Once
	env  *cel.Env
	err  error

	maxExpressionLength int
	costLimit           uint64
}

// NewEngine creates an Engine with the default limits.
func NewEngine() *Engine {
	return &Engine{
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed expression length.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit per evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) celEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(
			cel.Variable("key", cel.StringType),
			cel.Variable("value", cel.StringType),
			ext.Strings(),
		)
	})
	return e.env, e.err
}

func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrInvalidExpression, len(expr), e.maxExpressionLength)
	}

	env, err := e.celEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("creating CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newCompileError(StageParse, expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newCompileError(StageCheck, expr, issues)
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return nil, nil, fmt.Errorf("%w: %w: %q has type %s",
			ErrInvalidExpression, ErrNotBoolean, expr, checked.OutputType())
	}
	return env, checked, nil
}

// Check reports whether expr is a valid filter without building a program.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

// Compile parses and type checks expr. The expression sees the variables
// key and value, both strings, and must evaluate to a bool.
func (e *Engine) Compile(expr string) (*Expression, error) {
	env, checked, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("creating program for filter %q: %w", expr, err)
	}
	return &Expression{source: expr, program: program}, nil
}

// Expression is a compiled filter.
type Expression struct {
	source  string
	program cel.Program
}

// Source returns the expression text.
func (x *Expression) Source() string {
	return x.source
}

// Match evaluates the filter for one property.
func (x *Expression) Match(key, value string) (bool, error) {
	out, _, err := x.program.Eval(map[string]any{
		"key":   key,
		"value": value,
	})
	if err != nil {
		return false, fmt.Errorf("%w for %q: %s", ErrEvaluation, key, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, out.Value())
	}
	return matched, nil
}

// Apply returns a new set holding the entries of set that match, in order.
func (x *Expression) Apply(set *properties.Set) (*properties.Set, error) {
	out := properties.NewSet()
	for k, v := range set.All() {
		ok, err := x.Match(k, v)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Set(k, v)
		}
	}
	return out, nil
}
