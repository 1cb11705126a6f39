// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

// =============================================================================
// EXPRESSION EVALUATOR FACILITY
// =============================================================================

// Evaluator is the pluggable expression-evaluation capability. The
// dispatcher falls back to it when input does not resolve to a command,
// and tracked stats use it for expression-backed values.
//
// A nil result with a nil error means "no result"; evaluator errors are
// swallowed by the dispatcher and treated the same way.
type Evaluator interface {
	Evaluate(expr string) (any, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(expr string) (any, error)

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(expr string) (any, error) {
	return f(expr)
}

// NullEvaluator is the default evaluator for hosts without an expression
// facility: every expression yields no result.
type NullEvaluator struct{}

// Evaluate implements Evaluator.
func (NullEvaluator) Evaluate(string) (any, error) {
	return nil, nil
}
