// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// =============================================================================
// COERCION TESTS
// =============================================================================

func TestCoerceBool(t *testing.T) {
	table := NewCoercerTable()
	p := Param{Name: "flag", Type: TypeBool}

	tests := []struct {
		token string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}

	for _, tc := range tests {
		v, err := table.Coerce(tc.token, p)
		if err != nil {
			t.Errorf("Coerce(%q) error: %v", tc.token, err)
			continue
		}
		if v.(bool) != tc.want {
			t.Errorf("Coerce(%q) = %v, want %v", tc.token, v, tc.want)
		}
	}

	if _, err := table.Coerce("maybe", p); err == nil {
		t.Error("Coerce(maybe) succeeded, want failure")
	}
}

func TestCoerceOptionalBool(t *testing.T) {
	table := NewCoercerTable()
	p := Param{Name: "toggle", Type: TypeOptionalBool}

	v, err := table.Coerce("~", p)
	if err != nil {
		t.Fatalf("Coerce(~) error: %v", err)
	}
	if v.(*bool) != nil {
		t.Errorf("Coerce(~) = %v, want nil", v)
	}

	v, err = table.Coerce("null", p)
	if err != nil {
		t.Fatalf("Coerce(null) error: %v", err)
	}
	if v.(*bool) != nil {
		t.Errorf("Coerce(null) = %v, want nil", v)
	}

	v, err = table.Coerce("1", p)
	if err != nil {
		t.Fatalf("Coerce(1) error: %v", err)
	}
	if b := v.(*bool); b == nil || !*b {
		t.Errorf("Coerce(1) = %v, want true", v)
	}
}

func TestCoerceSentinels(t *testing.T) {
	table := NewCoercerTable()

	// "default" and "~" yield the zero value for value types.
	v, err := table.Coerce("default", Param{Name: "n", Type: TypeInt})
	if err != nil || v.(int) != 0 {
		t.Errorf("Coerce(default, int) = %v, %v; want 0", v, err)
	}
	v, err = table.Coerce("~", Param{Name: "n", Type: TypeInt})
	if err != nil || v.(int) != 0 {
		t.Errorf("Coerce(~, int) = %v, %v; want 0", v, err)
	}

	// "default" is not a sentinel for nullable types, and "null" is not
	// a sentinel for value types.
	v, err = table.Coerce("null", Param{Name: "s", Type: TypeString})
	if err != nil || v.(string) != "null" {
		t.Errorf("Coerce(null, string) = %v, %v; want the literal", v, err)
	}
}

func TestCoerceGeneric(t *testing.T) {
	table := NewCoercerTable()

	v, err := table.Coerce("42", Param{Name: "n", Type: TypeInt})
	if err != nil || v.(int) != 42 {
		t.Errorf("Coerce(42, int) = %v, %v", v, err)
	}

	v, err = table.Coerce("2.5", Param{Name: "f", Type: TypeFloat})
	if err != nil || math.Abs(v.(float64)-2.5) > 1e-9 {
		t.Errorf("Coerce(2.5, float64) = %v, %v", v, err)
	}

	v, err = table.Coerce("plain", Param{Name: "s", Type: TypeString})
	if err != nil || v.(string) != "plain" {
		t.Errorf("Coerce(plain, string) = %v, %v", v, err)
	}

	_, err = table.Coerce("notanint", Param{Name: "n", Type: TypeInt})
	var cerr *CoercionError
	if !errors.As(err, &cerr) {
		t.Errorf("Coerce(notanint, int) error = %v, want CoercionError", err)
	}
}

func TestCoerceEnum(t *testing.T) {
	table := NewCoercerTable()
	p := Param{
		Name: "mode",
		Type: TypeInt,
		Enum: map[string]int{"off": 0, "on": 1, "auto": 2},
	}

	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"on", 1, true},
		{"AUTO", 2, true},
		{"2", 2, true},
		{"off", 0, true},
		{"5", 0, false},
		{"blazing", 0, false},
	}

	for _, tc := range tests {
		v, err := table.Coerce(tc.token, p)
		if tc.ok != (err == nil) {
			t.Errorf("Coerce(%q) err = %v, want ok=%v", tc.token, err, tc.ok)
			continue
		}
		if tc.ok && v.(int) != tc.want {
			t.Errorf("Coerce(%q) = %v, want %d", tc.token, v, tc.want)
		}
	}
}

func TestCoercerRegistrationFirstWins(t *testing.T) {
	table := NewCoercerTable()
	typ := TypeOf[uint16]()

	first := func(string) (any, error) { return uint16(1), nil }
	second := func(string) (any, error) { return uint16(2), nil }

	if !table.Register(typ, first) {
		t.Fatal("first registration rejected")
	}
	if table.Register(typ, second) {
		t.Error("second registration accepted, want first-wins")
	}

	v, err := table.Coerce("anything", Param{Name: "x", Type: typ})
	if err != nil || v.(uint16) != 1 {
		t.Errorf("Coerce = %v, %v; want first coercer's value", v, err)
	}
}

// =============================================================================
// COLOR TESTS
// =============================================================================

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseColor(#FF0000) error: %v", err)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("ParseColor(#FF0000) = %+v", c)
	}

	c, err = ParseColor("00ff00")
	if err != nil || c.G != 1 {
		t.Errorf("ParseColor(00ff00) = %+v, %v", c, err)
	}

	c, err = ParseColor("#fff")
	if err != nil || c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("ParseColor(#fff) = %+v, %v", c, err)
	}

	c, err = ParseColor("#00000080")
	if err != nil || math.Abs(c.A-128.0/255) > 1e-9 {
		t.Errorf("ParseColor(#00000080) alpha = %v, %v", c.A, err)
	}
}

func TestParseColorComponents(t *testing.T) {
	// Integers are tried first and normalized from 0-255.
	c, err := ParseColor("255,128,0")
	if err != nil {
		t.Fatalf("ParseColor(255,128,0) error: %v", err)
	}
	if c.R != 1 || math.Abs(c.G-128.0/255) > 1e-9 || c.B != 0 || c.A != 1 {
		t.Errorf("ParseColor(255,128,0) = %+v", c)
	}

	// Floats only when integer parsing fails for some component.
	c, err = ParseColor("0.5,0.25,1.0")
	if err != nil {
		t.Fatalf("ParseColor(0.5,0.25,1.0) error: %v", err)
	}
	if c.R != 0.5 || c.G != 0.25 || c.B != 1 {
		t.Errorf("ParseColor(0.5,0.25,1.0) = %+v", c)
	}

	// "1,0,0" parses as integers, so it is (1/255, 0, 0) - not pure red.
	c, err = ParseColor("1,0,0")
	if err != nil {
		t.Fatalf("ParseColor(1,0,0) error: %v", err)
	}
	if math.Abs(c.R-1.0/255) > 1e-9 {
		t.Errorf("ParseColor(1,0,0).R = %v, want 1/255", c.R)
	}

	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor(red) succeeded, want failure")
	}
	if _, err := ParseColor("1,2,3,4,5"); err == nil {
		t.Error("ParseColor with 5 components succeeded, want failure")
	}
}

func TestColorCoercer(t *testing.T) {
	table := NewCoercerTable()
	v, err := table.Coerce("#336699", Param{Name: "c", Type: TypeColor})
	if err != nil {
		t.Fatalf("Coerce(#336699) error: %v", err)
	}
	if _, ok := v.(Color); !ok {
		t.Errorf("Coerce(#336699) = %v (%v), want Color", v, reflect.TypeOf(v))
	}
}
