// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the bubbletea console window host.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/util"
)

// =============================================================================
// SUGGESTION POPUP
// =============================================================================

// SuggestionPopup renders the suggestion list below the input line.
type SuggestionPopup struct {
	maxVisible int
	width      int
	theme      *Theme
}

// NewSuggestionPopup creates a popup showing up to 8 suggestions.
func NewSuggestionPopup(theme *Theme) *SuggestionPopup {
	return &SuggestionPopup{
		maxVisible: 8,
		width:      44,
		theme:      theme,
	}
}

// SetWidth sets the popup width.
func (p *SuggestionPopup) SetWidth(width int) {
	if width > 10 {
		p.width = width
	}
}

// View renders the popup for the suggester's current candidates.
// Returns "" when there is nothing to show.
func (p *SuggestionPopup) View(s *console.Suggester) string {
	candidates := s.Candidates()
	if len(candidates) == 0 {
		return ""
	}

	// Scrolling window centered on the selection.
	start := 0
	end := len(candidates)
	if len(candidates) > p.maxVisible {
		start = s.Index() - p.maxVisible/2
		if start < 0 {
			start = 0
		}
		end = start + p.maxVisible
		if end > len(candidates) {
			end = len(candidates)
			start = end - p.maxVisible
		}
	}

	var items []string
	for i := start; i < end; i++ {
		items = append(items, p.renderItem(candidates[i], i == s.Index()))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1).
		Width(p.width)

	return box.Render(strings.Join(items, "\n"))
}

// renderItem renders one suggestion row.
func (p *SuggestionPopup) renderItem(c console.Suggestion, selected bool) string {
	indicator := " "
	nameStyle := lipgloss.NewStyle().Foreground(TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary)

	if selected {
		indicator = ">"
		nameStyle = nameStyle.Foreground(Cyan).Bold(true)
	}

	name := c.Text
	if c.IsAlias {
		name += " -> " + c.Command.Name
	}

	descWidth := p.width - 22
	if descWidth < 0 {
		descWidth = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		lipgloss.NewStyle().Width(2).Foreground(Cyan).Render(indicator),
		nameStyle.Render(util.PadWidth(util.TruncateWidth(name, 18), 18)),
		descStyle.Render(util.TruncateWidth(c.Command.Help, descWidth)),
	)
}
