// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter selects properties with CEL expressions.

An expression sees two string variables, key and value, and must evaluate
to a bool. The string extension library is available, so expressions such
as value.lowerAscii() == "true" work.

# Basic Usage

	engine := filter.NewEngine()
	expr, err := engine.Compile(`key.startsWith("DEPLOY_") && value != ""`)
	if err != nil {
		return err
	}
	selected, err := expr.Apply(set)

# Limits

Expressions longer than DefaultMaxExpressionLength are rejected before
parsing, and each evaluation is bounded by DefaultCostLimit. Both can be
changed with WithMaxExpressionLength and WithCostLimit.

# Errors

Syntax and type errors are returned as *CompileError, which matches
ErrInvalidExpression with errors.Is and lists each issue with its position.
*/
package filter
