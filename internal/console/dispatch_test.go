// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// newTestConsole creates a console without built-ins so tests control the
// whole registry.
func newTestConsole() *Console {
	return New(Options{SkipBuiltins: true})
}

// drainText ticks the console and returns the consumed log lines.
func drainText(con *Console) []string {
	entries := con.Tick(nil)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestRunInvokesCallback(t *testing.T) {
	con := newTestConsole()

	var got []any
	con.AddCommand(&Command{
		Name: "move",
		Params: []Param{
			{Name: "x", Type: TypeInt},
			{Name: "y", Type: TypeInt},
		},
		Run: func(_ *Console, args []any) error {
			got = args
			return nil
		},
	}, false, true)

	if !con.Run("move 3 -7") {
		t.Fatal("Run returned false")
	}
	if len(got) != 2 || got[0].(int) != 3 || got[1].(int) != -7 {
		t.Errorf("args = %v, want [3 -7]", got)
	}
}

func TestRunOverflowAggregation(t *testing.T) {
	con := newTestConsole()

	var got []any
	con.AddCommand(&Command{
		Name: "say",
		Params: []Param{
			{Name: "channel", Type: TypeString},
			{Name: "message", Type: TypeString},
		},
		Run: func(_ *Console, args []any) error {
			got = args
			return nil
		},
	}, false, true)

	// Two declared parameters, four tokens: the trailing tokens are
	// space-joined into the final parameter.
	if !con.Run("say global hello there friend") {
		t.Fatal("Run returned false")
	}
	if got[0].(string) != "global" {
		t.Errorf("channel = %v", got[0])
	}
	if got[1].(string) != "hello there friend" {
		t.Errorf("message = %v, want aggregated tail", got[1])
	}
}

func TestRunDefaultCallback(t *testing.T) {
	con := newTestConsole()

	defaultRan := false
	con.AddCommand(&Command{
		Name:   "volume",
		Params: []Param{{Name: "level", Type: TypeInt}},
		Run:    func(*Console, []any) error { return nil },
		RunDefault: func(*Console) error {
			defaultRan = true
			return nil
		},
	}, false, true)

	if !con.Run("volume") {
		t.Fatal("Run returned false")
	}
	if !defaultRan {
		t.Error("default callback not invoked")
	}
}

func TestRunDefaultCallbackFailure(t *testing.T) {
	con := newTestConsole()
	con.AddCommand(&Command{
		Name:       "broken",
		Params:     []Param{{Name: "x", Type: TypeInt}},
		Run:        func(*Console, []any) error { return nil },
		RunDefault: func(*Console) error { return errors.New("boom") },
	}, false, true)

	if con.Run("broken") {
		t.Fatal("Run returned true, want failure")
	}
	lines := drainText(con)
	if len(lines) == 0 || !strings.Contains(lines[0], "default callback failed") {
		t.Errorf("log = %v, want default-callback failure", lines)
	}
}

func TestRunArityMismatch(t *testing.T) {
	con := newTestConsole()
	con.AddCommand(&Command{
		Name: "tp",
		Params: []Param{
			{Name: "x", Type: TypeInt},
			{Name: "y", Type: TypeInt},
		},
		Run: func(*Console, []any) error {
			t.Error("callback invoked despite arity mismatch")
			return nil
		},
	}, false, true)

	if con.Run("tp 5") {
		t.Fatal("Run returned true, want failure")
	}
	lines := drainText(con)
	if len(lines) == 0 || !strings.Contains(lines[0], "usage: tp <x> <y>") {
		t.Errorf("log = %v, want usage line", lines)
	}
}

func TestZeroParamCommandRejectsExtraTokens(t *testing.T) {
	con := newTestConsole()
	con.AddCommand(&Command{
		Name: "wipe",
		Run: func(*Console, []any) error {
			t.Error("callback invoked despite extra tokens")
			return nil
		},
		RunDefault: func(*Console) error {
			t.Error("default callback invoked despite extra tokens")
			return nil
		},
	}, false, true)

	// No final parameter slot exists to fold extras into, so they are
	// not silently discarded.
	if con.Run("wipe now") {
		t.Fatal("Run returned true, want failure")
	}
	lines := drainText(con)
	if len(lines) == 0 || !strings.Contains(lines[0], "usage: wipe") {
		t.Errorf("log = %v, want usage line", lines)
	}
}

func TestRunCoercionFailureAborts(t *testing.T) {
	con := newTestConsole()

	coerced := 0
	con.AddParameterType(TypeOf[int8](), func(token string) (any, error) {
		coerced++
		return int8(0), errors.New("nope")
	})

	con.AddCommand(&Command{
		Name: "mix",
		Params: []Param{
			{Name: "a", Type: TypeOf[int8]()},
			{Name: "b", Type: TypeOf[int8]()},
		},
		Run: func(*Console, []any) error {
			t.Error("callback invoked despite coercion failure")
			return nil
		},
	}, false, true)

	if con.Run("mix bad worse") {
		t.Fatal("Run returned true, want failure")
	}
	if coerced != 1 {
		t.Errorf("coercions attempted = %d, want abort after first", coerced)
	}
	lines := drainText(con)
	if len(lines) == 0 || !strings.Contains(lines[0], "invalid parameter: bad") {
		t.Errorf("log = %v, want invalid-parameter error", lines)
	}
}

func TestRunCallbackPanicIsolated(t *testing.T) {
	con := newTestConsole()
	con.AddCommand(&Command{
		Name: "crash",
		Run: func(*Console, []any) error {
			panic("kaboom")
		},
	}, false, true)

	if con.Run("crash") {
		t.Fatal("Run returned true, want failure")
	}
	lines := drainText(con)
	if len(lines) == 0 || !strings.Contains(lines[0], "command callback threw") {
		t.Errorf("log = %v, want callback-threw error", lines)
	}
}

// =============================================================================
// FALLBACK TESTS
// =============================================================================

func TestRunUnknownCommand(t *testing.T) {
	con := newTestConsole()

	if con.Run("unknowncmd") {
		t.Fatal("Run returned true for unknown command")
	}
	lines := drainText(con)
	if len(lines) != 1 || !strings.Contains(lines[0], "command not found: unknowncmd") {
		t.Errorf("log = %v, want not-found error", lines)
	}
}

func TestRunEvaluatorFallback(t *testing.T) {
	con := New(Options{
		SkipBuiltins: true,
		Evaluator: EvaluatorFunc(func(expr string) (any, error) {
			if expr == "1+1" {
				return 2, nil
			}
			return nil, errors.New("syntax error")
		}),
	})

	if !con.Run("1+1") {
		t.Error("evaluator fallback reported failure")
	}
	lines := drainText(con)
	if len(lines) != 1 || lines[0] != "2" {
		t.Errorf("log = %v, want evaluated result", lines)
	}

	// Evaluator errors are swallowed into the not-found path.
	if con.Run("nonsense((") {
		t.Error("Run returned true for failing evaluation")
	}
	lines = drainText(con)
	if len(lines) != 1 || !strings.Contains(lines[0], "command not found") {
		t.Errorf("log = %v, want not-found error", lines)
	}
}

// =============================================================================
// HISTORY TESTS
// =============================================================================

func TestHistoryKeepsMostRecentTen(t *testing.T) {
	con := newTestConsole()

	for i := 1; i <= 11; i++ {
		con.Run(fmt.Sprintf("input%d", i))
	}

	entries := con.History().Entries()
	if len(entries) != 10 {
		t.Fatalf("history len = %d, want 10", len(entries))
	}
	// Most recent first; the oldest (input1) was rotated out.
	if entries[0].Raw != "input11" {
		t.Errorf("entries[0] = %q, want input11", entries[0].Raw)
	}
	if entries[9].Raw != "input2" {
		t.Errorf("entries[9] = %q, want input2", entries[9].Raw)
	}
}

func TestHistoryRecordsUnresolvedInput(t *testing.T) {
	con := newTestConsole()
	con.Run("ghostcmd with args")

	entries := con.History().Entries()
	if len(entries) != 1 || entries[0].Name != "ghostcmd" {
		t.Errorf("entries = %v, want the unresolved attempt", entries)
	}
	if entries[0].Raw != "ghostcmd with args" {
		t.Errorf("raw = %q", entries[0].Raw)
	}
}

func TestHistoryBrowseCursor(t *testing.T) {
	h := NewHistory(10)
	h.Push("a", "a")
	h.Push("b", "b")
	h.Push("c", "c")

	if h.Browsing() {
		t.Error("browsing before any recall")
	}
	if got := h.Older(); got != "c" {
		t.Errorf("Older() = %q, want c", got)
	}
	if got := h.Older(); got != "b" {
		t.Errorf("Older() = %q, want b", got)
	}
	if !h.Browsing() {
		t.Error("not browsing after recall")
	}
	if got := h.Newer(); got != "c" {
		t.Errorf("Newer() = %q, want c", got)
	}
	if got := h.Newer(); got != "" {
		t.Errorf("Newer() past newest = %q, want empty", got)
	}
	if h.Browsing() {
		t.Error("still browsing after stepping past newest")
	}

	// A new submit resets the cursor.
	h.Older()
	h.Push("d", "d")
	if h.Browsing() {
		t.Error("browsing after Push")
	}
}
