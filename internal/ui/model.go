// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the bubbletea console window host.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/console"
)

// tickInterval drives the console's per-frame work: log draining and
// key-binding scans.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

// reloadMsg delivers a hot-reloaded config onto the update loop, so it
// is applied on the tick thread rather than the watcher goroutine.
type reloadMsg struct {
	cfg *config.Config
}

// =============================================================================
// CONSOLE WINDOW MODEL
// =============================================================================

// Model is the bubbletea model hosting a console window. The window
// toggles with Esc; while closed, key presses feed the console's
// binding table instead of the input line.
type Model struct {
	con    *console.Console
	theme  *Theme
	prompt string

	input    textinput.Model
	viewport viewport.Model
	popup    *SuggestionPopup

	// Keys newly pressed since the last tick, consumed by the binding
	// scan.
	pressed map[string]bool

	reload <-chan *config.Config

	width  int
	height int
	ready  bool
}

// NewModel creates the console window model. The console starts closed;
// Esc opens it. reload, if non-nil, delivers hot-reloaded configs.
func NewModel(con *console.Console, theme *Theme, prompt string, reload <-chan *config.Config) *Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "type a command, ? for help"
	ti.CharLimit = 1024
	ti.PromptStyle = theme.Prompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.Hint

	return &Model{
		con:     con,
		theme:   theme,
		prompt:  prompt,
		input:   ti,
		popup:   NewSuggestionPopup(theme),
		pressed: make(map[string]bool),
		reload:  reload,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick(), m.waitReload())
}

// waitReload blocks on the reload channel off the update loop and turns
// each delivery into a reloadMsg.
func (m *Model) waitReload() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-m.reload
		if !ok {
			return nil
		}
		return reloadMsg{cfg: cfg}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		drained := m.con.Tick(func(key string) bool { return m.pressed[key] })
		clear(m.pressed)
		if len(drained) > 0 {
			m.refreshLog()
		}
		return m, m.tick()

	case reloadMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitReload()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateKey routes one key press.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.con.Toggle()
		if m.con.IsOpen() {
			m.con.SetInputFocused(false)
			return m, m.input.Focus()
		}
		m.input.Blur()
		return m, nil
	}

	if !m.con.IsOpen() {
		// Closed console: keys go to the binding table.
		m.pressed[strings.ToLower(key)] = true
		return m, nil
	}

	sug := m.con.Suggester()

	switch key {
	case "enter":
		raw := m.input.Value()
		if strings.TrimSpace(raw) != "" {
			m.con.Run(raw)
		}
		m.input.Reset()
		sug.Update("", false)
		return m, nil

	case "tab":
		if cand := sug.Current(); cand != nil {
			m.input.SetValue(cand.Text)
			m.input.CursorEnd()
			sug.Update(cand.Text, false)
		}
		return m, nil

	case "up":
		if sug.Active() {
			sug.Prev()
			return m, nil
		}
		if recalled := m.con.History().Older(); recalled != "" {
			m.setInput(recalled)
		}
		return m, nil

	case "down":
		if sug.Active() {
			sug.Next()
			return m, nil
		}
		m.setInput(m.con.History().Newer())
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		sug.Update(after, m.con.History().Browsing())
	}
	return m, cmd
}

// applyConfig applies a hot-reloaded config: log capacity, prompt and
// key bindings. Theme changes need a restart.
func (m *Model) applyConfig(cfg *config.Config) {
	m.con.Logs().SetCapacity(cfg.LogCapacity)
	for key, command := range cfg.Bindings {
		if current, bound := m.con.BoundCommand(key); bound {
			if current == command {
				continue
			}
			m.con.Unbind(key)
		}
		m.con.Bind(key, command)
	}
	m.prompt = cfg.Prompt
	m.input.Prompt = cfg.Prompt
	m.con.Log("config reloaded")
}

// setInput replaces the input line without triggering suggestions, used
// for history recall.
func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.con.Suggester().Clear()
}

// resize lays the window out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - 7
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 4
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 8
	m.popup.SetWidth(width / 2)
	m.refreshLog()
}

// refreshLog re-renders the retained log lines into the viewport.
func (m *Model) refreshLog() {
	if !m.ready {
		return
	}
	var sb strings.Builder
	for _, e := range m.con.Logs().Lines() {
		sb.WriteString(m.theme.LogStyle(e.Level).Render(e.Text))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	if !m.con.IsOpen() {
		return m.theme.Hint.Render("console closed - Esc to open, bound keys active")
	}

	header := m.theme.Header.Render("devconsole")

	hint := m.con.Suggester().Hint(m.input.Value())
	hintLine := ""
	if hint != "" {
		// Align the hint under the input text, past the prompt.
		pad := strings.Repeat(" ", lipgloss.Width(m.prompt))
		hintLine = m.theme.Hint.Render(pad + hint)
	}

	sections := []string{
		header,
		m.viewport.View(),
		m.input.View(),
	}
	if hintLine != "" {
		sections = append(sections, hintLine)
	}
	if popup := m.popup.View(m.con.Suggester()); popup != "" {
		sections = append(sections, popup)
	}

	return m.theme.Window.Width(m.width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// =============================================================================
// PROGRAM ENTRY
// =============================================================================

// Run starts the console window host and blocks until it exits.
func Run(con *console.Console, theme *Theme, prompt string, reload <-chan *config.Config) error {
	con.Open()
	model := NewModel(con, theme, prompt, reload)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
