// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.False(t, m.HasFlag(Shift))
	assert.Equal(t, "", m.String())

	m.SetFlag(true, Shift, Control)
	assert.True(t, m.HasFlag(Shift))
	assert.True(t, m.HasFlag(Control))
	assert.False(t, m.HasFlag(Alt))
	assert.Equal(t, "Control+Shift", m.ModifiersString())

	m.SetFlag(false, Control)
	assert.Equal(t, "Shift", m.String())
}
