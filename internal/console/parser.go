// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import "strings"

// =============================================================================
// INPUT TOKENIZER
// =============================================================================

// Tokenize splits raw input into a command name followed by parameter
// tokens. Double-quoted spans that cross space boundaries are collapsed
// into a single token with the quotes stripped.
//
//	Tokenize(`print "hello world" extra`) -> ["print", "hello world", "extra"]
//
// An unterminated quote simply accumulates to the end of the input;
// tokenization never fails.
func Tokenize(raw string) []string {
	parts := strings.Split(raw, " ")
	if len(parts) == 1 {
		// Command name only, no parameters.
		return parts
	}

	tokens := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if isQuotedToken(part) {
			// Complete quoted token within one segment.
			tokens = append(tokens, strings.Trim(part, `"`))
			continue
		}

		if strings.HasPrefix(part, `"`) && i < len(parts)-1 {
			// Opening quote: accumulate segments until one ends with a
			// quote or the input runs out.
			j := i
			for j < len(parts)-1 && !strings.HasSuffix(parts[j], `"`) {
				j++
			}
			joined := strings.Join(parts[i:j+1], " ")
			tokens = append(tokens, strings.Trim(joined, `"`))
			i = j
			continue
		}

		tokens = append(tokens, part)
	}
	return tokens
}

// isQuotedToken reports whether a single segment is a self-contained
// quoted token ("..." with both quotes in place).
func isQuotedToken(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// CommandName returns the command-name portion of raw input, lowercased,
// without tokenizing the parameters.
func CommandName(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		raw = raw[:i]
	}
	return strings.ToLower(raw)
}
