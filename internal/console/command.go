// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"reflect"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a console command that can be executed.
type Command struct {
	// Name is the primary command name. It is normalized on registration:
	// trimmed, lowercased, internal whitespace stripped.
	Name string

	// Aliases are alternative names (e.g., "cls" for "clear").
	// Normalized the same way as Name; unique across the whole registry.
	Aliases []string

	// Help is shown by the help command and in suggestions.
	Help string

	// Params defines the positional parameters in order.
	Params []Param

	// Run is the callback invoked with one coerced value per parameter.
	Run func(con *Console, args []any) error

	// RunDefault, when set, is invoked instead of Run when the user
	// supplies no parameters at all.
	RunDefault func(con *Console) error

	// Custom marks commands contributed by the host application,
	// as opposed to the fixed built-in set.
	Custom bool

	// Permanent commands cannot be removed from the registry.
	Permanent bool
}

// Signature returns the usage line, e.g. "bind <key> <command>".
func (c *Command) Signature() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for _, p := range c.Params {
		sb.WriteString(" <")
		sb.WriteString(p.Name)
		sb.WriteString(">")
	}
	return sb.String()
}

// =============================================================================
// PARAMETER DEFINITION
// =============================================================================

// Param defines a single positional parameter.
type Param struct {
	// Name of the parameter, used in usage lines and hints.
	Name string

	// Help explains the parameter in detailed help output.
	Help string

	// Type is the value type the raw token is coerced to.
	Type reflect.Type

	// Enum, when non-nil, restricts the parameter to the given symbolic
	// values. Coercion matches names case-insensitively first, then
	// accepts the raw integer value.
	Enum map[string]int
}

// Common parameter types.
var (
	TypeString       = reflect.TypeOf("")
	TypeInt          = reflect.TypeOf(0)
	TypeFloat        = reflect.TypeOf(0.0)
	TypeBool         = reflect.TypeOf(false)
	TypeOptionalBool = reflect.TypeOf((*bool)(nil))
	TypeColor        = reflect.TypeOf(Color{})
)

// TypeOf returns the reflect.Type for T, for registering custom coercers
// and declaring parameters of host-defined types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// =============================================================================
// NAME NORMALIZATION
// =============================================================================

// normalizeName trims, lowercases and strips internal whitespace from a
// command name or alias. Returns "" for names that are empty after
// normalization.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.ContainsAny(name, " \t") {
		return name
	}
	var sb strings.Builder
	for _, r := range name {
		if r == ' ' || r == '\t' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// normalizeAliases normalizes each alias and removes empties and
// duplicates (including duplicates of the command name itself).
func normalizeAliases(name string, aliases []string) []string {
	var out []string
	seen := map[string]bool{name: true}
	for _, a := range aliases {
		a = normalizeName(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
