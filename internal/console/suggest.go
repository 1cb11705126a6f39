// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// SUGGESTION ENGINE
// =============================================================================

// Suggestion is one candidate completion for the current input.
type Suggestion struct {
	// Text is the full completed input: the typed prefix (case
	// preserved) plus the remainder of the matched name.
	Text string

	// Command the suggestion resolves to.
	Command *Command

	// IsAlias is true when the match was against an alias rather than
	// the command's primary name.
	IsAlias bool
}

// Suggester produces ranked completions for partial command input and
// derives parameter-hint text. It is driven by the host on every
// input-change event.
type Suggester struct {
	registry   *Registry
	candidates []Suggestion
	index      int
}

// NewSuggester creates a suggester over the given registry.
func NewSuggester(registry *Registry) *Suggester {
	return &Suggester{registry: registry}
}

// Update recomputes the candidate list for the current input. Suggestions
// are suppressed while the input is empty, starts with a space, contains
// an internal space (parameters are being typed), or history browsing is
// active.
func (s *Suggester) Update(input string, browsingHistory bool) {
	s.Clear()

	if input == "" || browsingHistory ||
		strings.HasPrefix(input, " ") || strings.Contains(input, " ") {
		return
	}

	lower := strings.ToLower(input)

	// Name matches first, in registry order.
	var aliasMatches []Suggestion
	for _, cmd := range s.registry.All() {
		if strings.HasPrefix(cmd.Name, lower) {
			s.candidates = append(s.candidates, Suggestion{
				Text:    input + cmd.Name[len(lower):],
				Command: cmd,
			})
		}
		for _, alias := range cmd.Aliases {
			if strings.HasPrefix(alias, lower) {
				aliasMatches = append(aliasMatches, Suggestion{
					Text:    input + alias[len(lower):],
					Command: cmd,
					IsAlias: true,
				})
			}
		}
	}
	s.candidates = append(s.candidates, aliasMatches...)
}

// Candidates returns the current suggestion list.
func (s *Suggester) Candidates() []Suggestion {
	return s.candidates
}

// Active reports whether any suggestions are available.
func (s *Suggester) Active() bool {
	return len(s.candidates) > 0
}

// Index returns the cursor position within the candidate list.
func (s *Suggester) Index() int {
	return s.index
}

// Current returns the candidate under the cursor, or nil.
func (s *Suggester) Current() *Suggestion {
	if s.index < 0 || s.index >= len(s.candidates) {
		return nil
	}
	return &s.candidates[s.index]
}

// Next moves the cursor down the list, wrapping at the end.
func (s *Suggester) Next() {
	if len(s.candidates) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.candidates)
}

// Prev moves the cursor up the list, wrapping at the start.
func (s *Suggester) Prev() {
	if len(s.candidates) == 0 {
		return
	}
	s.index--
	if s.index < 0 {
		s.index = len(s.candidates) - 1
	}
}

// Clear drops all candidates and resets the cursor.
func (s *Suggester) Clear() {
	s.candidates = nil
	s.index = 0
}

// =============================================================================
// PARAMETER HINTS
// =============================================================================

// Hint derives the parameter-hint text for the current input.
//
// While a suggestion is selected, the hint lists the selected candidate's
// declared parameters. Otherwise, if the first token resolves to a
// command and parameters are being typed, the hint shows only the
// remaining placeholders, left-padded to the display width of the typed
// input so it lines up past the typed text.
func (s *Suggester) Hint(input string) string {
	if cand := s.Current(); cand != nil {
		return placeholders(cand.Command.Params)
	}

	toks := Tokenize(input)
	if strings.HasSuffix(input, " ") && len(toks) > 0 && toks[len(toks)-1] == "" {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return ""
	}

	cmd := s.registry.Get(toks[0])
	if cmd == nil {
		return ""
	}

	// A token in progress counts as filling its slot.
	filled := len(toks) - 1
	if filled == 0 && !strings.Contains(input, " ") {
		// Command name still being typed; no parameter position yet.
		return ""
	}
	if filled >= len(cmd.Params) {
		return ""
	}

	pad := strings.Repeat(" ", runewidth.StringWidth(input))
	return pad + placeholders(cmd.Params[filled:])
}

// placeholders renders "<a> <b> <c>" for a parameter list.
func placeholders(params []Param) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "<" + p.Name + ">"
	}
	return strings.Join(parts, " ")
}
