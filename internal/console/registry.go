// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands in insertion order. Names and
// aliases are unique across the whole registry at all times.
type Registry struct {
	order   []*Command
	byName  map[string]*Command
	byAlias map[string]*Command

	// DevBuilds enables registration of dev-only commands. When false,
	// Add with devOnly=true is rejected without mutation.
	DevBuilds bool
}

// NewRegistry creates an empty registry.
func NewRegistry(devBuilds bool) *Registry {
	return &Registry{
		byName:    make(map[string]*Command),
		byAlias:   make(map[string]*Command),
		DevBuilds: devBuilds,
	}
}

// Add registers a command. The command's name and aliases are normalized
// in place. Returns false without mutating the registry when the name is
// empty after normalization, the name collides with an existing command
// name, any alias collides with an existing name or alias, or the command
// is dev-only and dev builds are disabled.
func (r *Registry) Add(cmd *Command, devOnly, custom bool) bool {
	if cmd == nil {
		return false
	}
	if devOnly && !r.DevBuilds {
		return false
	}

	name := normalizeName(cmd.Name)
	if name == "" {
		return false
	}
	aliases := normalizeAliases(name, cmd.Aliases)

	if _, taken := r.byName[name]; taken {
		return false
	}
	for _, a := range aliases {
		if _, taken := r.byName[a]; taken {
			return false
		}
		if _, taken := r.byAlias[a]; taken {
			return false
		}
	}

	cmd.Name = name
	cmd.Aliases = aliases
	cmd.Custom = custom

	r.order = append(r.order, cmd)
	r.byName[name] = cmd
	for _, a := range aliases {
		r.byAlias[a] = cmd
	}
	return true
}

// Remove deletes a command by name or alias. Removing a name that does
// not resolve is a no-op success. Permanent commands are never removed;
// attempting to do so returns false and leaves the registry unchanged.
func (r *Registry) Remove(name string) bool {
	cmd := r.Get(name)
	if cmd == nil {
		return true
	}
	if cmd.Permanent {
		return false
	}

	delete(r.byName, cmd.Name)
	for _, a := range cmd.Aliases {
		delete(r.byAlias, a)
	}
	for i, c := range r.order {
		if c == cmd {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get resolves a command by exact name match first, then by alias.
// Returns nil when nothing matches.
func (r *Registry) Get(name string) *Command {
	name = normalizeName(name)
	if cmd, ok := r.byName[name]; ok {
		return cmd
	}
	if cmd, ok := r.byAlias[name]; ok {
		return cmd
	}
	return nil
}

// All returns the registered commands in registry (insertion) order.
func (r *Registry) All() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}
