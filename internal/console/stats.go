// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"errors"
	"fmt"
	"reflect"
)

// =============================================================================
// TRACKED STATS
// =============================================================================

// Stat is a tracked value displayed by the console. Each backing
// strategy (expression, function, struct field) is one variant; all
// expose the same current-value operation.
type Stat interface {
	Name() string
	Value(con *Console) (string, error)
}

// -----------------------------------------------------------------------------
// Expression-backed stat
// -----------------------------------------------------------------------------

type exprStat struct {
	name string
	expr string
}

// NewExprStat tracks the result of re-evaluating an expression through
// the console's evaluator facility.
func NewExprStat(name, expr string) Stat {
	return &exprStat{name: name, expr: expr}
}

func (s *exprStat) Name() string { return s.name }

func (s *exprStat) Value(con *Console) (string, error) {
	v, err := con.evaluator.Evaluate(s.expr)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", errors.New("no result")
	}
	return fmt.Sprint(v), nil
}

// -----------------------------------------------------------------------------
// Function-backed stat
// -----------------------------------------------------------------------------

type funcStat struct {
	name string
	fn   func() any
}

// NewFuncStat tracks the result of calling fn each time the stat is read.
func NewFuncStat(name string, fn func() any) Stat {
	return &funcStat{name: name, fn: fn}
}

func (s *funcStat) Name() string { return s.name }

func (s *funcStat) Value(*Console) (string, error) {
	return fmt.Sprint(s.fn()), nil
}

// -----------------------------------------------------------------------------
// Field-backed stat
// -----------------------------------------------------------------------------

type fieldStat struct {
	name   string
	target reflect.Value
	field  string
}

// NewFieldStat tracks an exported struct field read through reflection.
// target must be a pointer to a struct so the stat observes live values.
func NewFieldStat(name string, target any, field string) (Stat, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.New("stat target must be a pointer to a struct")
	}
	if _, ok := v.Elem().Type().FieldByName(field); !ok {
		return nil, fmt.Errorf("no field %q on %s", field, v.Elem().Type())
	}
	return &fieldStat{name: name, target: v, field: field}, nil
}

func (s *fieldStat) Name() string { return s.name }

func (s *fieldStat) Value(*Console) (string, error) {
	f := s.target.Elem().FieldByName(s.field)
	if !f.IsValid() || !f.CanInterface() {
		return "", fmt.Errorf("field %q is not readable", s.field)
	}
	return fmt.Sprint(f.Interface()), nil
}
