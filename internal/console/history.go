// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

// =============================================================================
// COMMAND HISTORY
// =============================================================================

// DefaultHistorySize is the number of raw inputs kept in history.
const DefaultHistorySize = 10

// HistoryEntry is one submitted input: the resolved (or attempted)
// command name plus the full raw line.
type HistoryEntry struct {
	Name string
	Raw  string
}

// History is a fixed-capacity, most-recent-first ring of submitted
// inputs with a browse cursor for UP/DOWN recall.
type History struct {
	entries []HistoryEntry
	size    int
	cursor  int // -1 = not browsing
}

// NewHistory creates a history ring with the given capacity.
// A non-positive size falls back to DefaultHistorySize.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size, cursor: -1}
}

// Push records a submitted input at the front, rotating out the oldest
// entry once the ring is full, and resets the browse cursor.
func (h *History) Push(name, raw string) {
	h.entries = append([]HistoryEntry{{Name: name, Raw: raw}}, h.entries...)
	if len(h.entries) > h.size {
		h.entries = h.entries[:h.size]
	}
	h.cursor = -1
}

// Older moves the cursor one step back in time and returns that entry's
// raw input. Stays on the oldest entry once reached. Returns "" when
// history is empty.
func (h *History) Older() string {
	if len(h.entries) == 0 {
		return ""
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[h.cursor].Raw
}

// Newer moves the cursor one step forward. Stepping past the newest
// entry leaves browse mode and returns "".
func (h *History) Newer() string {
	if h.cursor <= 0 {
		h.cursor = -1
		return ""
	}
	h.cursor--
	return h.entries[h.cursor].Raw
}

// Browsing reports whether the user is currently recalling history.
func (h *History) Browsing() bool {
	return h.cursor >= 0
}

// Reset leaves browse mode without touching the entries.
func (h *History) Reset() {
	h.cursor = -1
}

// Clear drops all entries and leaves browse mode.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}

// Entries returns the stored inputs, most recent first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
