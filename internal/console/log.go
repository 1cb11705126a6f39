// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console implements the developer console command engine.
package console

import (
	"sync"
	"time"
)

// =============================================================================
// LOG LEVELS
// =============================================================================

// LogLevel classifies a console log line.
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the level's display tag.
func (l LogLevel) String() string {
	switch l {
	case LevelSuccess:
		return "ok"
	case LevelWarning:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// LogEntry is a single console log line.
type LogEntry struct {
	Level LogLevel
	Text  string
	Time  time.Time
}

// =============================================================================
// LOG BUFFER
// =============================================================================

// DefaultLogCapacity is the number of consumed log lines retained.
const DefaultLogCapacity = 500

// LogBuffer collects console output. Append is safe to call from any
// goroutine; consumption happens on the tick thread, which drains the
// pending appends into the retained line list once per tick.
type LogBuffer struct {
	mu       sync.Mutex
	pending  []LogEntry
	lines    []LogEntry
	capacity int
}

// NewLogBuffer creates a log buffer retaining up to capacity consumed
// lines. A non-positive capacity falls back to DefaultLogCapacity.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogBuffer{capacity: capacity}
}

// Append queues one log line. Safe from any goroutine.
func (b *LogBuffer) Append(level LogLevel, text string) {
	b.mu.Lock()
	b.pending = append(b.pending, LogEntry{Level: level, Text: text, Time: time.Now()})
	b.mu.Unlock()
}

// Drain moves pending appends into the retained line list and returns
// the newly consumed entries. Called once per tick from the tick thread.
func (b *LogBuffer) Drain() []LogEntry {
	b.mu.Lock()
	drained := b.pending
	b.pending = nil
	b.lines = append(b.lines, drained...)
	if over := len(b.lines) - b.capacity; over > 0 {
		b.lines = b.lines[over:]
	}
	b.mu.Unlock()
	return drained
}

// Lines returns the retained (already consumed) log lines, oldest first.
func (b *LogBuffer) Lines() []LogEntry {
	b.mu.Lock()
	out := make([]LogEntry, len(b.lines))
	copy(out, b.lines)
	b.mu.Unlock()
	return out
}

// Clear drops retained lines. Pending appends survive so messages logged
// between a clear and the next tick are not lost.
func (b *LogBuffer) Clear() {
	b.mu.Lock()
	b.lines = nil
	b.mu.Unlock()
}

// SetCapacity adjusts the retained-line capacity.
func (b *LogBuffer) SetCapacity(capacity int) {
	if capacity <= 0 {
		return
	}
	b.mu.Lock()
	b.capacity = capacity
	if over := len(b.lines) - b.capacity; over > 0 {
		b.lines = b.lines[over:]
	}
	b.mu.Unlock()
}

// Capacity returns the retained-line capacity.
func (b *LogBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}
