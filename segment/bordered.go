// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import "cogentcore.org/colorwell/abilities"

// borderedSwatchBehavior is a swatch that is clicked like a single
// button: it toggles the color panel and looks pressed while active.
// It does not track hovering and cannot be focused.
func borderedSwatchBehavior() behavior {
	b := swatchBehavior()
	b.name = "BorderedSwatch"
	b.label = "color well"
	b.abilities.SetFlag(true, abilities.Accessible)
	b.performAction = func(sg *Segment) bool {
		return Toggle.PerformAction(sg)
	}
	b.updateForActive = func(sg *Segment, active bool) {
		if active {
			sg.SetState(Pressed)
		} else {
			sg.SetState(Default)
		}
	}
	b.needsRender = func(s State) bool { return s != Hover }
	return b
}
