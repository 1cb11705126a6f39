// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
//
// The engine is host-agnostic: it owns command registration, tokenization,
// parameter coercion, dispatch, suggestions, key bindings and the console
// log, while the host (TUI, REPL, game loop) owns rendering and key-event
// sourcing.
//
// # Key Types
//
//   - Console: the engine context object; one per host
//   - Registry: named commands with aliases and permanent/custom flags
//   - CoercerTable: per-type string-to-value coercion functions
//   - Suggester: prefix completions and parameter hints
//   - KeyBindings: key-to-command table scanned once per tick
//   - LogBuffer: thread-safe append, tick-thread drain
//
// # Usage
//
// Create a console and feed it raw input:
//
//	con := console.New(console.Options{})
//	con.Run(`print "hello world"`)
//
// Drive it from the host loop:
//
//	con.Tick(func(key string) bool { return pressed[key] })
//
// All dispatch failures are recovered, logged and reported as a boolean;
// nothing in this package panics out to the host.
package console
