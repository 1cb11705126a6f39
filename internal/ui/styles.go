// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the bubbletea console window host.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/devconsole/internal/console"
)

// =============================================================================
// PALETTE
// =============================================================================

// Cyan - brand color, prompt, selections
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - success lines
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - error lines
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - warning lines
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Surface - main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// Overlay - borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - labels, descriptions
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - hints, placeholder text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the console window.
type Theme struct {
	ColorProfile termenv.Profile
	IsDark       bool

	Header    lipgloss.Style
	Window    lipgloss.Style
	Prompt    lipgloss.Style
	InputText lipgloss.Style
	Hint      lipgloss.Style

	LogInfo    lipgloss.Style
	LogSuccess lipgloss.Style
	LogWarning lipgloss.Style
	LogError   lipgloss.Style
}

// NewTheme builds a theme for the requested mode ("dark", "light" or
// "auto"), probing the terminal when set to auto.
func NewTheme(mode string) *Theme {
	isDark := true
	switch mode {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	return &Theme{
		ColorProfile: termenv.ColorProfile(),
		IsDark:       isDark,

		Header: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		Window: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		InputText: lipgloss.NewStyle().
			Foreground(TextPrimary),
		Hint: lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true),

		LogInfo:    lipgloss.NewStyle().Foreground(TextPrimary),
		LogSuccess: lipgloss.NewStyle().Foreground(Emerald),
		LogWarning: lipgloss.NewStyle().Foreground(Amber),
		LogError:   lipgloss.NewStyle().Foreground(Rose),
	}
}

// LogStyle returns the style for a log level.
func (t *Theme) LogStyle(level console.LogLevel) lipgloss.Style {
	switch level {
	case console.LevelSuccess:
		return t.LogSuccess
	case console.LevelWarning:
		return t.LogWarning
	case console.LevelError:
		return t.LogError
	default:
		return t.LogInfo
	}
}
