// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"fmt"
	"strings"
)

// =============================================================================
// COMMAND DISPATCHER
// =============================================================================

// Run tokenizes and dispatches one line of raw input. It returns true
// when a command (or the evaluator fallback) executed successfully.
// Every failure is recovered, logged as a user-readable error line and
// reported as false; Run never panics.
func Run(con *Console, raw string) bool {
	return con.Run(raw)
}

// Run dispatches raw input through the console's registry, coercers and
// evaluator fallback.
func (con *Console) Run(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	toks := Tokenize(raw)
	name := strings.ToLower(toks[0])
	cmd := con.registry.Get(name)

	// History records the attempt whether or not the name resolved.
	con.history.Push(name, raw)

	if cmd == nil {
		return con.runFallback(raw, name)
	}

	toks = aggregateOverflow(toks, len(cmd.Params))

	// Bare command name: prefer the default callback when one exists.
	if len(toks) == 1 && cmd.RunDefault != nil {
		if err := invokeDefault(con, cmd); err != nil {
			con.LogError("default callback failed: " + err.Error())
			return false
		}
		return true
	}

	if len(toks)-1 != len(cmd.Params) {
		con.LogError("usage: " + cmd.Signature())
		return false
	}

	args, err := coerceArgs(con, cmd, toks[1:])
	if err != nil {
		con.LogError(err.Error())
		return false
	}

	if err := invoke(con, cmd, args); err != nil {
		con.LogError("command callback threw: " + err.Error())
		return false
	}
	return true
}

// runFallback hands unresolved input to the expression evaluator. A
// non-empty textual result is logged as a success and does not count as
// a dispatch failure; anything else is a not-found error.
func (con *Console) runFallback(raw, name string) bool {
	v, err := con.evaluator.Evaluate(raw)
	if err == nil && v != nil {
		if text := fmt.Sprint(v); text != "" {
			con.LogSuccess(text)
			return true
		}
	}
	con.LogError("command not found: " + name)
	return false
}

// aggregateOverflow concatenates tokens beyond the declared parameter
// count into the final parameter slot, leaving exactly name + N tokens.
func aggregateOverflow(toks []string, paramCount int) []string {
	if paramCount == 0 || len(toks) <= paramCount+1 {
		return toks
	}
	out := make([]string, paramCount+1)
	copy(out, toks[:paramCount])
	out[paramCount] = strings.Join(toks[paramCount:], " ")
	return out
}

// coerceArgs converts each positional token to its parameter's declared
// type. The first failure aborts; no later parameters are attempted.
func coerceArgs(con *Console, cmd *Command, toks []string) ([]any, error) {
	args := make([]any, len(toks))
	for i, tok := range toks {
		v, err := con.coercers.Coerce(tok, cmd.Params[i])
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// invoke runs the command callback with panic isolation.
func invoke(con *Console, cmd *Command, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s", panicText(r))
		}
	}()
	if cmd.Run == nil {
		return nil
	}
	return cmd.Run(con, args)
}

// invokeDefault runs the zero-argument default callback with panic
// isolation.
func invokeDefault(con *Console, cmd *Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s", panicText(r))
		}
	}()
	return cmd.RunDefault(con)
}

// panicText renders a recovered panic value for the log.
func panicText(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
