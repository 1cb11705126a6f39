// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import "testing"

func newTestCommand(name string, aliases ...string) *Command {
	return &Command{
		Name:    name,
		Aliases: aliases,
		Run:     func(*Console, []any) error { return nil },
	}
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistryNameAndAliasResolveSameCommand(t *testing.T) {
	r := NewRegistry(false)
	cmd := newTestCommand("teleport", "tp", "warp")
	if !r.Add(cmd, false, false) {
		t.Fatal("Add failed")
	}

	for _, name := range []string{"teleport", "tp", "warp", "TELEPORT", "Tp"} {
		if got := r.Get(name); got != cmd {
			t.Errorf("Get(%q) = %v, want the registered command", name, got)
		}
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	r := NewRegistry(false)
	if !r.Add(newTestCommand("spawn", "sp"), false, false) {
		t.Fatal("initial Add failed")
	}

	tests := []struct {
		name    string
		cmd     *Command
		wantLen int
	}{
		{"duplicate name", newTestCommand("spawn"), 1},
		{"name normalizes to duplicate", newTestCommand("  SPAWN "), 1},
		{"alias collides with name", newTestCommand("other", "spawn"), 1},
		{"alias collides with alias", newTestCommand("other", "sp"), 1},
		{"empty name", newTestCommand("   "), 1},
	}

	for _, tc := range tests {
		if r.Add(tc.cmd, false, false) {
			t.Errorf("%s: Add succeeded, want rejection", tc.name)
		}
		if r.Len() != tc.wantLen {
			t.Errorf("%s: registry mutated, len = %d", tc.name, r.Len())
		}
	}
}

func TestRegistryNormalizesOnAdd(t *testing.T) {
	r := NewRegistry(false)
	cmd := newTestCommand(" My Command ", "MC", "mc", "", "mycommand")
	if !r.Add(cmd, false, true) {
		t.Fatal("Add failed")
	}

	if cmd.Name != "mycommand" {
		t.Errorf("name = %q, want %q", cmd.Name, "mycommand")
	}
	// Empty aliases, duplicates and self-references are dropped.
	if len(cmd.Aliases) != 1 || cmd.Aliases[0] != "mc" {
		t.Errorf("aliases = %v, want [mc]", cmd.Aliases)
	}
	if !cmd.Custom {
		t.Error("custom flag not set")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(false)
	r.Add(newTestCommand("tempcmd", "tmp"), false, false)

	// Removing an unknown name is a no-op success.
	if !r.Remove("nothere") {
		t.Error("Remove of unknown name = false, want true")
	}

	// Remove by alias.
	if !r.Remove("tmp") {
		t.Error("Remove by alias failed")
	}
	if r.Get("tempcmd") != nil || r.Get("tmp") != nil {
		t.Error("command still resolves after removal")
	}
}

func TestRegistryRemovePermanent(t *testing.T) {
	r := NewRegistry(false)
	cmd := newTestCommand("help")
	cmd.Permanent = true
	r.Add(cmd, false, false)

	if r.Remove("help") {
		t.Error("Remove of permanent command = true, want false")
	}
	if r.Get("help") != cmd {
		t.Error("permanent command no longer resolves")
	}
}

func TestRegistryDevOnly(t *testing.T) {
	r := NewRegistry(false)
	if r.Add(newTestCommand("debugdump"), true, false) {
		t.Error("dev-only Add succeeded outside dev builds")
	}
	if r.Get("debugdump") != nil {
		t.Error("dev-only command registered outside dev builds")
	}

	dev := NewRegistry(true)
	if !dev.Add(newTestCommand("debugdump"), true, false) {
		t.Error("dev-only Add failed in dev builds")
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry(false)
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		r.Add(newTestCommand(n), false, false)
	}

	all := r.All()
	if len(all) != len(names) {
		t.Fatalf("All() len = %d, want %d", len(all), len(names))
	}
	for i, n := range names {
		if all[i].Name != n {
			t.Errorf("All()[%d] = %q, want %q (insertion order)", i, all[i].Name, n)
		}
	}
}
