// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbilities(t *testing.T) {
	ab := Set(Activatable, Draggable)
	assert.True(t, ab.HasFlag(Activatable))
	assert.True(t, ab.HasFlag(Draggable))
	assert.False(t, ab.HasFlag(Focusable))
	assert.Equal(t, "Activatable|Draggable", ab.String())

	ab.SetFlag(false, Draggable)
	ab.SetFlag(true, Focusable)
	assert.Equal(t, "Activatable|Focusable", ab.String())
}
