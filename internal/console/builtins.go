// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// registerBuiltins installs the fixed permanent command set plus the
// removable convenience commands. Called once from New.
func registerBuiltins(con *Console) {
	permanent := []*Command{
		{
			Name:       "devconsole",
			Aliases:    []string{"console"},
			Help:       "Show console status and version information",
			RunDefault: handleDevConsole,
			Run:        noArgs(handleDevConsole),
		},
		{
			Name:       "commands",
			Aliases:    []string{"cmds"},
			Help:       "List all registered commands",
			RunDefault: handleCommands,
			Run:        noArgs(handleCommands),
		},
		{
			Name:    "help",
			Aliases: []string{"?"},
			Help:    "Show help, or detailed help for one command",
			Params: []Param{
				{Name: "command", Help: "command to describe", Type: TypeString},
			},
			RunDefault: handleHelpOverview,
			Run:        handleHelp,
		},
		{
			Name:    "print",
			Aliases: []string{"echo"},
			Help:    "Print a message to the console log",
			Params: []Param{
				{Name: "message", Help: "text to print", Type: TypeString},
			},
			Run: handlePrint,
		},
		{
			Name:       "clear",
			Aliases:    []string{"cls"},
			Help:       "Clear the console log",
			RunDefault: handleClear,
			Run:        noArgs(handleClear),
		},
		{
			Name:       "reset",
			Help:       "Reset the console: log, history and key bindings",
			RunDefault: handleReset,
			Run:        noArgs(handleReset),
		},
		{
			Name: "bind",
			Help: "Bind a key to a command string",
			Params: []Param{
				{Name: "key", Help: "key name, e.g. f1 or ctrl+p", Type: TypeString},
				{Name: "command", Help: "command to run on press", Type: TypeString},
			},
			Run: handleBind,
		},
		{
			Name: "unbind",
			Help: "Remove a key binding",
			Params: []Param{
				{Name: "key", Help: "key name to unbind", Type: TypeString},
			},
			Run: handleUnbind,
		},
		{
			Name:       "bindings",
			Help:       "List all key bindings",
			RunDefault: handleBindings,
			Run:        noArgs(handleBindings),
		},
	}
	for _, cmd := range permanent {
		cmd.Permanent = true
		con.registry.Add(cmd, false, false)
	}

	extras := []*Command{
		{
			Name:       "history",
			Help:       "Show recently submitted inputs",
			RunDefault: handleHistory,
			Run:        noArgs(handleHistory),
		},
		{
			Name:       "stats",
			Help:       "Show all tracked stats and their current values",
			RunDefault: handleStats,
			Run:        noArgs(handleStats),
		},
		{
			Name: "stat",
			Help: "Track an expression as a named stat",
			Params: []Param{
				{Name: "name", Help: "stat name", Type: TypeString},
				{Name: "expression", Help: "expression to evaluate", Type: TypeString},
			},
			Run: handleStat,
		},
		{
			Name: "unstat",
			Help: "Stop tracking a stat",
			Params: []Param{
				{Name: "name", Help: "stat name", Type: TypeString},
			},
			Run: handleUnstat,
		},
		{
			Name: "eval",
			Help: "Evaluate an expression through the evaluator facility",
			Params: []Param{
				{Name: "expression", Help: "expression to evaluate", Type: TypeString},
			},
			Run: handleEval,
		},
		{
			Name: "log_size",
			Help: "Show or set the retained log line capacity",
			Params: []Param{
				{Name: "size", Help: "new capacity", Type: TypeInt},
			},
			RunDefault: handleLogSizeShow,
			Run:        handleLogSize,
		},
	}
	for _, cmd := range extras {
		con.registry.Add(cmd, false, false)
	}
}

// noArgs adapts a zero-argument handler to the Run signature for
// commands whose parameter list is empty.
func noArgs(fn func(con *Console) error) func(*Console, []any) error {
	return func(con *Console, _ []any) error {
		return fn(con)
	}
}

// =============================================================================
// HANDLER IMPLEMENTATIONS
// =============================================================================

func handleDevConsole(con *Console) error {
	con.Log("devconsole instance " + con.id)
	con.Log(fmt.Sprintf("uptime: %s", con.Uptime().Round(time.Second)))
	con.Log(fmt.Sprintf("commands: %d, bindings: %d, stats: %d",
		con.registry.Len(), con.bindings.Len(), len(con.stats)))
	return nil
}

func handleCommands(con *Console) error {
	for _, cmd := range con.registry.All() {
		line := cmd.Name
		if len(cmd.Aliases) > 0 {
			line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		con.Log(line)
	}
	return nil
}

func handleHelpOverview(con *Console) error {
	con.Log("available commands:")
	for _, cmd := range con.registry.All() {
		con.Log("  " + padName(cmd.Name, 12) + cmd.Help)
	}
	con.Log(`type "help <command>" for details`)
	return nil
}

func handleHelp(con *Console, args []any) error {
	name := args[0].(string)
	cmd := con.registry.Get(name)
	if cmd == nil {
		con.LogWarning("no such command: " + strings.ToLower(name))
		return nil
	}
	con.Log(cmd.Signature())
	if cmd.Help != "" {
		con.Log("  " + cmd.Help)
	}
	if len(cmd.Aliases) > 0 {
		con.Log("  aliases: " + strings.Join(cmd.Aliases, ", "))
	}
	for _, p := range cmd.Params {
		con.Log("  <" + p.Name + ">  " + p.Help)
	}
	return nil
}

func handlePrint(con *Console, args []any) error {
	con.Log(args[0].(string))
	return nil
}

func handleClear(con *Console) error {
	con.logs.Clear()
	return nil
}

func handleReset(con *Console) error {
	con.logs.Clear()
	con.history.Clear()
	con.suggester.Clear()
	con.bindings.Clear()
	con.LogSuccess("console reset")
	return nil
}

func handleBind(con *Console, args []any) error {
	key := args[0].(string)
	command := args[1].(string)
	if con.Bind(key, command) {
		con.LogSuccess("bound " + normalizeKey(key) + " to: " + command)
	}
	return nil
}

func handleUnbind(con *Console, args []any) error {
	key := args[0].(string)
	if con.Unbind(key) {
		con.LogSuccess("unbound " + normalizeKey(key))
	}
	return nil
}

func handleBindings(con *Console) error {
	bindings := con.Bindings()
	if len(bindings) == 0 {
		con.Log("no key bindings")
		return nil
	}
	for _, b := range bindings {
		con.Log(padName(b.Key, 10) + b.Command)
	}
	return nil
}

func handleHistory(con *Console) error {
	entries := con.history.Entries()
	if len(entries) == 0 {
		con.Log("history is empty")
		return nil
	}
	for i, e := range entries {
		con.Log(fmt.Sprintf("%2d  %s", i+1, e.Raw))
	}
	return nil
}

func handleStats(con *Console) error {
	if len(con.stats) == 0 {
		con.Log("no tracked stats")
		return nil
	}
	for _, s := range con.stats {
		v, err := s.Value(con)
		if err != nil {
			con.LogWarning(padName(s.Name(), 12) + "<" + err.Error() + ">")
			continue
		}
		con.Log(padName(s.Name(), 12) + v)
	}
	return nil
}

func handleStat(con *Console, args []any) error {
	name := args[0].(string)
	expr := args[1].(string)
	if !con.TrackStat(NewExprStat(name, expr)) {
		con.LogError("stat already tracked: " + normalizeName(name))
		return nil
	}
	con.LogSuccess("tracking " + normalizeName(name))
	return nil
}

func handleUnstat(con *Console, args []any) error {
	name := args[0].(string)
	if !con.UntrackStat(name) {
		con.LogError("no such stat: " + normalizeName(name))
		return nil
	}
	con.LogSuccess("stopped tracking " + normalizeName(name))
	return nil
}

func handleEval(con *Console, args []any) error {
	expr := args[0].(string)
	v, err := con.evaluator.Evaluate(expr)
	if err != nil {
		con.LogError("evaluation failed: " + err.Error())
		return nil
	}
	if v == nil {
		con.LogWarning("no result")
		return nil
	}
	con.LogSuccess(fmt.Sprint(v))
	return nil
}

func handleLogSizeShow(con *Console) error {
	con.Log("log capacity: " + strconv.Itoa(con.logs.Capacity()))
	return nil
}

func handleLogSize(con *Console, args []any) error {
	size := args[0].(int)
	if size <= 0 {
		con.LogError("log capacity must be positive")
		return nil
	}
	con.logs.SetCapacity(size)
	con.LogSuccess("log capacity set to " + strconv.Itoa(size))
	return nil
}

// padName left-aligns a name in a fixed-width column.
func padName(name string, width int) string {
	if len(name) >= width {
		return name + " "
	}
	return name + strings.Repeat(" ", width-len(name))
}
