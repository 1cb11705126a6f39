// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONSOLE OPTIONS
// =============================================================================

// Options configures a Console. The zero value is usable.
type Options struct {
	// DevBuilds enables registration of dev-only commands.
	DevBuilds bool

	// HistorySize overrides the history ring capacity (default 10).
	HistorySize int

	// LogCapacity overrides the retained log line count (default 500).
	LogCapacity int

	// Evaluator is the expression-evaluation facility used as a dispatch
	// fallback and by expression stats. Defaults to NullEvaluator.
	Evaluator Evaluator

	// SkipBuiltins leaves the registry empty. Used by tests.
	SkipBuiltins bool
}

// =============================================================================
// CONSOLE
// =============================================================================

// Console is the engine context object. One Console is owned by the host
// application; there is no package-level state, everything the engine
// needs lives here explicitly.
//
// All methods except the Log* family must be called from the host's tick
// goroutine.
type Console struct {
	id        string
	startedAt time.Time

	registry  *Registry
	coercers  *CoercerTable
	history   *History
	suggester *Suggester
	bindings  *KeyBindings
	logs      *LogBuffer
	evaluator Evaluator

	stats     []Stat
	statNames map[string]bool

	enabled         bool
	open            bool
	bindingsEnabled bool
	inputFocused    bool
}

// New creates a console, registers the built-in coercers and the
// permanent command set, and leaves it enabled and closed.
func New(opts Options) *Console {
	ev := opts.Evaluator
	if ev == nil {
		ev = NullEvaluator{}
	}

	con := &Console{
		id:              uuid.NewString(),
		startedAt:       time.Now(),
		registry:        NewRegistry(opts.DevBuilds),
		coercers:        NewCoercerTable(),
		history:         NewHistory(opts.HistorySize),
		bindings:        NewKeyBindings(),
		logs:            NewLogBuffer(opts.LogCapacity),
		evaluator:       ev,
		statNames:       make(map[string]bool),
		enabled:         true,
		bindingsEnabled: true,
	}
	con.suggester = NewSuggester(con.registry)

	if !opts.SkipBuiltins {
		registerBuiltins(con)
	}
	return con
}

// ID returns the console instance id.
func (con *Console) ID() string { return con.id }

// Registry exposes the command registry.
func (con *Console) Registry() *Registry { return con.registry }

// History exposes the command history ring.
func (con *Console) History() *History { return con.history }

// Suggester exposes the suggestion engine.
func (con *Console) Suggester() *Suggester { return con.suggester }

// Logs exposes the log buffer.
func (con *Console) Logs() *LogBuffer { return con.logs }

// =============================================================================
// LIFECYCLE STATE MACHINE
// =============================================================================

// Enable allows the console to open and its bindings to run.
func (con *Console) Enable() { con.enabled = true }

// Disable closes the console and suppresses bindings until re-enabled.
func (con *Console) Disable() {
	con.enabled = false
	con.open = false
}

// Enabled reports whether the console is enabled.
func (con *Console) Enabled() bool { return con.enabled }

// Open shows the console. No-op while disabled.
func (con *Console) Open() {
	if con.enabled {
		con.open = true
	}
}

// Close hides the console.
func (con *Console) Close() { con.open = false }

// IsOpen reports whether the console window is showing.
func (con *Console) IsOpen() bool { return con.open }

// Toggle flips the console between open and closed.
func (con *Console) Toggle() {
	if con.open {
		con.Close()
	} else {
		con.Open()
	}
}

// SetInputFocused tells the console whether an unrelated UI element
// currently holds input focus; bindings are skipped while it does.
func (con *Console) SetInputFocused(focused bool) { con.inputFocused = focused }

// SetBindingsEnabled turns per-tick binding execution on or off.
func (con *Console) SetBindingsEnabled(enabled bool) { con.bindingsEnabled = enabled }

// BindingsEnabled reports whether bindings run on tick.
func (con *Console) BindingsEnabled() bool { return con.bindingsEnabled }

// =============================================================================
// REGISTRATION API
// =============================================================================

// AddCommand registers a host-contributed command. Returns false on any
// name or alias collision, or when devOnly is set outside dev builds.
func (con *Console) AddCommand(cmd *Command, devOnly, custom bool) bool {
	return con.registry.Add(cmd, devOnly, custom)
}

// RemoveCommand removes a command by name or alias. Permanent commands
// are refused.
func (con *Console) RemoveCommand(name string) bool {
	return con.registry.Remove(name)
}

// GetCommand resolves a command by name or alias.
func (con *Console) GetCommand(name string) *Command {
	return con.registry.Get(name)
}

// AddParameterType registers a coercion function for a parameter type.
// The first registration for a type wins.
func (con *Console) AddParameterType(typ reflect.Type, fn CoerceFunc) bool {
	return con.coercers.Register(typ, fn)
}

// =============================================================================
// BINDING API
// =============================================================================

// Bind maps a key to a raw command string. A conflict is logged and
// reported as failure.
func (con *Console) Bind(key, command string) bool {
	if !con.bindings.Bind(key, command) {
		con.LogError("key already bound: " + normalizeKey(key))
		return false
	}
	return true
}

// Unbind removes a key's binding. A missing binding is logged and
// reported as failure.
func (con *Console) Unbind(key string) bool {
	if !con.bindings.Unbind(key) {
		con.LogError("key not bound: " + normalizeKey(key))
		return false
	}
	return true
}

// Bindings returns the current bindings in binding order.
func (con *Console) Bindings() []Binding {
	return con.bindings.All()
}

// BoundCommand returns the raw command bound to a key, if any.
func (con *Console) BoundCommand(key string) (string, bool) {
	return con.bindings.Get(key)
}

// =============================================================================
// STATS API
// =============================================================================

// TrackStat starts tracking a stat. Names are unique; a duplicate is
// rejected.
func (con *Console) TrackStat(s Stat) bool {
	name := normalizeName(s.Name())
	if name == "" || con.statNames[name] {
		return false
	}
	con.statNames[name] = true
	con.stats = append(con.stats, s)
	return true
}

// UntrackStat stops tracking the named stat.
func (con *Console) UntrackStat(name string) bool {
	name = normalizeName(name)
	if !con.statNames[name] {
		return false
	}
	delete(con.statNames, name)
	for i, s := range con.stats {
		if normalizeName(s.Name()) == name {
			con.stats = append(con.stats[:i], con.stats[i+1:]...)
			break
		}
	}
	return true
}

// Stats returns the tracked stats in tracking order.
func (con *Console) Stats() []Stat {
	out := make([]Stat, len(con.stats))
	copy(out, con.stats)
	return out
}

// =============================================================================
// LOG SINK
// =============================================================================

// Log appends an info line. Safe from any goroutine.
func (con *Console) Log(text string) { con.logs.Append(LevelInfo, text) }

// LogSuccess appends a success line. Safe from any goroutine.
func (con *Console) LogSuccess(text string) { con.logs.Append(LevelSuccess, text) }

// LogWarning appends a warning line. Safe from any goroutine.
func (con *Console) LogWarning(text string) { con.logs.Append(LevelWarning, text) }

// LogError appends an error line. Safe from any goroutine.
func (con *Console) LogError(text string) { con.logs.Append(LevelError, text) }

// =============================================================================
// PER-TICK WORK
// =============================================================================

// Tick performs the console's per-frame work on the host's tick thread:
// it drains cross-goroutine log appends into the retained line list and
// scans key bindings. pressed reports whether a key was newly pressed
// this tick; pass nil when the host has no key source.
//
// Returns the log entries consumed this tick.
func (con *Console) Tick(pressed func(key string) bool) []LogEntry {
	drained := con.logs.Drain()
	con.tickBindings(pressed)
	return drained
}

// tickBindings runs every bound command whose key was newly pressed this
// tick. A panic while scanning is recovered once per tick and logged; it
// does not stop subsequent ticks.
func (con *Console) tickBindings(pressed func(key string) bool) {
	if pressed == nil || !con.enabled || !con.bindingsEnabled || con.inputFocused {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			con.LogError("key binding scan failed: " + panicText(r))
		}
	}()
	for _, b := range con.bindings.All() {
		if pressed(b.Key) {
			con.Run(b.Command)
		}
	}
}

// Uptime returns how long the console has existed.
func (con *Console) Uptime() time.Duration {
	return time.Since(con.startedAt)
}
