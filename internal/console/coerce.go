// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"reflect"
	"strconv"
	"strings"
)

// =============================================================================
// COERCION ERROR
// =============================================================================

// CoercionError reports a raw token that could not be converted to a
// parameter's declared type.
type CoercionError struct {
	Token string
	Type  reflect.Type
}

func (e *CoercionError) Error() string {
	return "invalid parameter: " + e.Token + ", expected " + e.Type.String()
}

// =============================================================================
// COERCER TABLE
// =============================================================================

// CoerceFunc converts a raw string token into a typed value.
type CoerceFunc func(token string) (any, error)

// CoercerTable maps value types to coercion functions. At most one
// coercer exists per type; the first registration wins.
type CoercerTable struct {
	coercers map[reflect.Type]CoerceFunc
}

// NewCoercerTable creates a coercer table with the built-in coercers
// (bool, nullable bool, Color) pre-registered.
func NewCoercerTable() *CoercerTable {
	t := &CoercerTable{coercers: make(map[reflect.Type]CoerceFunc)}
	t.Register(TypeBool, coerceBool)
	t.Register(TypeOptionalBool, coerceOptionalBool)
	t.Register(TypeColor, func(token string) (any, error) { return ParseColor(token) })
	return t
}

// Register adds a coercer for the given type. Returns false if the type
// already has a coercer; the existing registration is kept.
func (t *CoercerTable) Register(typ reflect.Type, fn CoerceFunc) bool {
	if typ == nil || fn == nil {
		return false
	}
	if _, exists := t.coercers[typ]; exists {
		return false
	}
	t.coercers[typ] = fn
	return true
}

// Has reports whether a coercer is registered for the type.
func (t *CoercerTable) Has(typ reflect.Type) bool {
	_, ok := t.coercers[typ]
	return ok
}

// Coerce converts a raw token to the parameter's declared type.
//
// Resolution order: sentinel tokens ("null"/"~" for nullable types,
// "default"/"~" for value types), then a registered coercer, then enum
// matching, then a generic strconv conversion.
func (t *CoercerTable) Coerce(token string, p Param) (any, error) {
	if p.Type == nil {
		return token, nil
	}

	if v, ok := sentinelValue(token, p.Type); ok {
		return v, nil
	}

	if fn, ok := t.coercers[p.Type]; ok {
		v, err := fn(token)
		if err != nil {
			return nil, &CoercionError{Token: token, Type: p.Type}
		}
		return v, nil
	}

	if p.Enum != nil {
		return coerceEnum(token, p)
	}

	return coerceGeneric(token, p)
}

// sentinelValue handles the "null"/"default"/"~" special-case tokens.
// For nullable types the sentinel yields a typed nil; for value types it
// yields the type's zero value.
func sentinelValue(token string, typ reflect.Type) (any, bool) {
	nullable := isNullable(typ)
	if token == "~" ||
		(nullable && strings.EqualFold(token, "null")) ||
		(!nullable && strings.EqualFold(token, "default")) {
		return reflect.Zero(typ).Interface(), true
	}
	return nil, false
}

func isNullable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// =============================================================================
// ENUM COERCION
// =============================================================================

// coerceEnum matches an enum parameter: case-insensitive symbolic name
// first, then the raw integer value.
func coerceEnum(token string, p Param) (any, error) {
	for name, value := range p.Enum {
		if strings.EqualFold(token, name) {
			return convertInt(value, p.Type), nil
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		for _, value := range p.Enum {
			if value == n {
				return convertInt(n, p.Type), nil
			}
		}
	}
	return nil, &CoercionError{Token: token, Type: p.Type}
}

// convertInt converts an enum's integer value to the parameter's declared
// type, so host-defined `type Mode int` enums come back correctly typed.
func convertInt(n int, typ reflect.Type) any {
	v := reflect.ValueOf(n)
	if typ.Kind() >= reflect.Int && typ.Kind() <= reflect.Uint64 && v.CanConvert(typ) {
		return v.Convert(typ).Interface()
	}
	return n
}

// =============================================================================
// GENERIC COERCION
// =============================================================================

// coerceGeneric attempts a textual conversion for types without a
// dedicated coercer.
func coerceGeneric(token string, p Param) (any, error) {
	typ := p.Type
	fail := func() (any, error) { return nil, &CoercionError{Token: token, Type: typ} }

	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(token).Convert(typ).Interface(), nil
	case reflect.Bool:
		b, err := parseBoolToken(token)
		if err != nil {
			return fail()
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, typ.Bits())
		if err != nil {
			return fail()
		}
		return reflect.ValueOf(n).Convert(typ).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(token, 10, typ.Bits())
		if err != nil {
			return fail()
		}
		return reflect.ValueOf(n).Convert(typ).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, typ.Bits())
		if err != nil {
			return fail()
		}
		return reflect.ValueOf(f).Convert(typ).Interface(), nil
	}
	return fail()
}

// =============================================================================
// BUILT-IN COERCERS
// =============================================================================

// parseBoolToken accepts "0"/"1" alongside the standard boolean literals.
func parseBoolToken(token string) (bool, error) {
	switch token {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return strconv.ParseBool(strings.ToLower(token))
}

func coerceBool(token string) (any, error) {
	return parseBoolToken(token)
}

// coerceOptionalBool coerces a *bool, with the null sentinel acting as an
// explicit third state on top of plain boolean coercion.
func coerceOptionalBool(token string) (any, error) {
	if token == "~" || strings.EqualFold(token, "null") {
		return (*bool)(nil), nil
	}
	b, err := parseBoolToken(token)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
