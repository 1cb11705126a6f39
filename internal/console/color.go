// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// COLOR PARAMETER TYPE
// =============================================================================

// Color is an RGBA color with components in the range 0.0-1.0.
type Color struct {
	R, G, B, A float64
}

// String renders the color as "rgba(r, g, b, a)" with 0-1 components.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// Hex renders the color as a #RRGGBBAA string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X",
		clampByte(c.R), clampByte(c.G), clampByte(c.B), clampByte(c.A))
}

func clampByte(f float64) int {
	v := int(f*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

var errBadColor = errors.New("invalid color")

// ParseColor parses a color token. A hex string ("#RGB", "#RGBA",
// "#RRGGBB", "#RRGGBBAA", leading '#' optional) is tried first. Otherwise
// the token is a comma-separated list of up to 4 components, parsed as
// 0-255 integers normalized to 0.0-1.0; only if any component fails
// integer parsing is the whole list re-parsed as raw 0.0-1.0 floats.
//
// The integer-first fallback means "1,0,0" is the integer triple
// (1/255, 0, 0), not pure red. Callers wanting pure red must pass
// "1.0,0,0" or a hex form.
func ParseColor(token string) (Color, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Color{}, errBadColor
	}

	if c, err := parseHexColor(token); err == nil {
		return c, nil
	}

	parts := strings.Split(token, ",")
	if len(parts) > 4 {
		return Color{}, errBadColor
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if c, err := parseIntColor(parts); err == nil {
		return c, nil
	}
	return parseFloatColor(parts)
}

// parseHexColor parses 3, 4, 6 or 8 hex digits with an optional '#'.
func parseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	var digits []string
	switch len(s) {
	case 3, 4:
		for _, r := range s {
			digits = append(digits, string(r)+string(r))
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			digits = append(digits, s[i:i+2])
		}
	default:
		return Color{}, errBadColor
	}

	vals := [4]float64{0, 0, 0, 1}
	for i, d := range digits {
		n, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, errBadColor
		}
		vals[i] = float64(n) / 255
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func parseIntColor(parts []string) (Color, error) {
	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Color{}, errBadColor
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		vals[i] = float64(n) / 255
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func parseFloatColor(parts []string) (Color, error) {
	vals := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, errBadColor
		}
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		vals[i] = f
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}
