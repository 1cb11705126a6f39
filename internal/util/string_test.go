// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWidth(t *testing.T) {
	assert.Equal(t, "hello", TruncateWidth("hello", 10))
	assert.Equal(t, "hel...", TruncateWidth("hello world", 6))
	assert.Equal(t, "he", TruncateWidth("hello", 2))
	assert.Equal(t, "", TruncateWidth("hello", 0))

	// CJK characters are two columns wide.
	assert.Equal(t, 4, StringWidth("日本"))
	assert.Equal(t, "日本", TruncateWidth("日本", 4))
}

func TestPadWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadWidth("ab", 5))
	assert.Equal(t, "abcdef ", PadWidth("abcdef", 5))
	assert.Equal(t, "日本 ", PadWidth("日本", 5))
}
