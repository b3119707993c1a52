// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderRespectsColorSwitch(t *testing.T) {
	prev := colorEnabled
	defer SetColor(prev)

	SetColor(false)
	assert.Equal(t, "hello", Success("hello"))
	assert.Equal(t, "hello", Warn("hello"))
	assert.Equal(t, "hello", Fail("hello"))
}
