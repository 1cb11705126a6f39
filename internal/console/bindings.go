// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import "strings"

// =============================================================================
// KEY BINDINGS
// =============================================================================

// Binding maps an input key to a raw command string, executed as if the
// user had typed it.
type Binding struct {
	Key     string
	Command string
}

// KeyBindings is the key-to-command table. Keys are host-provided names
// (e.g. "f1", "ctrl+p", "space"), normalized to lowercase. One binding
// per key; only an explicit unbind removes an entry.
type KeyBindings struct {
	order []string
	table map[string]string
}

// NewKeyBindings creates an empty binding table.
func NewKeyBindings() *KeyBindings {
	return &KeyBindings{table: make(map[string]string)}
}

// normalizeKey lowercases and trims a key name.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Bind associates a key with a raw command string. Returns false when
// the key is empty or already bound.
func (k *KeyBindings) Bind(key, command string) bool {
	key = normalizeKey(key)
	if key == "" {
		return false
	}
	if _, bound := k.table[key]; bound {
		return false
	}
	k.table[key] = command
	k.order = append(k.order, key)
	return true
}

// Unbind removes a key's binding. Returns false when the key has no
// binding.
func (k *KeyBindings) Unbind(key string) bool {
	key = normalizeKey(key)
	if _, bound := k.table[key]; !bound {
		return false
	}
	delete(k.table, key)
	for i, existing := range k.order {
		if existing == key {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the command bound to a key.
func (k *KeyBindings) Get(key string) (string, bool) {
	cmd, ok := k.table[normalizeKey(key)]
	return cmd, ok
}

// All returns the bindings in binding order.
func (k *KeyBindings) All() []Binding {
	out := make([]Binding, 0, len(k.order))
	for _, key := range k.order {
		out = append(out, Binding{Key: key, Command: k.table[key]})
	}
	return out
}

// Clear removes every binding.
func (k *KeyBindings) Clear() {
	k.order = nil
	k.table = make(map[string]string)
}

// Len returns the number of bindings.
func (k *KeyBindings) Len() int {
	return len(k.order)
}
