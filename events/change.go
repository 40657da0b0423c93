// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image/color"
)

// ColorChange is a Change or Action event sent by a color well
// when its color value changes.
type ColorChange struct {
	Base

	// Old is the color before the change.
	Old color.RGBA

	// New is the color after the change.
	New color.RGBA
}

// NewColorChange returns a new color change event of the given type.
func NewColorChange(typ Types, old, nw color.RGBA) *ColorChange {
	ev := &ColorChange{Old: old, New: nw}
	ev.Typ = typ
	ev.Init()
	return ev
}

func (ev *ColorChange) String() string {
	return fmt.Sprintf("%v{Old: %v, New: %v, Time: %v}", ev.Type(), ev.Old, ev.New, ev.Time().Format("04:05"))
}
