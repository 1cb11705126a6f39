// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the plain-terminal REPL host for the console.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/ui"
)

// =============================================================================
// REPL
// =============================================================================

// REPL hosts a console on a plain terminal with line editing, input
// history and tab completion.
type REPL struct {
	con         *console.Console
	theme       *ui.Theme
	prompt      string
	line        *liner.State
	historyFile string
	reload      <-chan *config.Config
}

// NewREPL creates the REPL host. When cfg.SaveHistory is set, input
// history persists under the config directory. reload, if non-nil,
// delivers hot-reloaded configs, applied between prompts.
func NewREPL(con *console.Console, theme *ui.Theme, cfg *config.Config, reload <-chan *config.Config) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(input string) []string {
		sug := con.Suggester()
		sug.Update(input, false)
		var out []string
		for _, c := range sug.Candidates() {
			out = append(out, c.Text)
		}
		sug.Clear()
		return out
	})

	r := &REPL{
		con:    con,
		theme:  theme,
		prompt: cfg.Prompt,
		line:   line,
		reload: reload,
	}

	if cfg.SaveHistory {
		if path, err := config.HistoryPath(); err == nil {
			r.historyFile = path
			r.loadHistory()
		}
	}

	return r
}

func (r *REPL) loadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory() {
	if r.historyFile == "" {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (r *REPL) Close() {
	r.saveHistory()
	r.line.Close()
}

// Run reads and executes lines until Ctrl+C, Ctrl+D or an "exit" line.
// Key bindings do not fire in this host; there is no per-frame key
// state on a cooked terminal.
func (r *REPL) Run() error {
	r.con.Open()
	r.flush()

	for {
		r.applyPendingReload()

		input, err := r.line.Prompt(r.prompt)
		if err != nil {
			// Ctrl+C, Ctrl+D or a closed terminal all end the session.
			if err != liner.ErrPromptAborted && err != io.EOF {
				return err
			}
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}

		r.line.AppendHistory(input)
		r.con.Run(input)
		r.flush()
	}
}

// applyPendingReload applies a hot-reloaded config if one arrived while
// the last command ran. Non-blocking; liner owns the terminal otherwise.
func (r *REPL) applyPendingReload() {
	if r.reload == nil {
		return
	}
	select {
	case cfg, ok := <-r.reload:
		if !ok {
			r.reload = nil
			return
		}
		r.con.Logs().SetCapacity(cfg.LogCapacity)
		for key, command := range cfg.Bindings {
			if current, bound := r.con.BoundCommand(key); bound {
				if current == command {
					continue
				}
				r.con.Unbind(key)
			}
			r.con.Bind(key, command)
		}
		r.prompt = cfg.Prompt
		r.con.Log("config reloaded")
		r.flush()
	default:
	}
}

// flush drains pending log entries to stdout with level styling.
func (r *REPL) flush() {
	for _, e := range r.con.Tick(nil) {
		fmt.Println(r.theme.LogStyle(e.Level).Render(e.Text))
	}
}
