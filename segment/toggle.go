// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"cogentcore.org/colorwell/abilities"
	"cogentcore.org/colorwell/events"
)

// ToggleWidth is the width of a toggle segment in device-independent
// units. It is the same for every control size; only the icon
// geometry changes with the size.
const ToggleWidth = 20

// ToggleIconSize returns the size of the toggle icon for the given
// control size, in device-independent units.
func ToggleIconSize(size ControlSize) float32 {
	switch size {
	case Mini:
		return 9
	case Small:
		return 10.5
	case Large:
		return 13.5
	}
	return 12
}

func toggleBehavior() behavior {
	b := baseBehavior()
	b.name = "Toggle"
	b.edge = Trailing
	b.label = "color picker"
	b.abilities = abilities.Set(abilities.Activatable, abilities.Focusable, abilities.Accessible)
	b.performAction = togglePerformAction
	b.updateForActive = func(sg *Segment, active bool) {
		if active {
			sg.SetState(Pressed)
		} else {
			sg.SetState(Default)
		}
	}
	b.needsRender = func(s State) bool { return s != Hover }
	b.mouseDrag = toggleMouseDrag
	return b
}

// togglePerformAction deactivates an active owner and exclusively
// activates an inactive one.
func togglePerformAction(sg *Segment) bool {
	o := sg.Owner()
	if o == nil {
		return false
	}
	if o.IsActive() {
		o.Deactivate()
	} else {
		o.Activate(true)
	}
	return true
}

// toggleMouseDrag keeps the highlight only while the pointer is
// over the segment.
func toggleMouseDrag(sg *Segment, e events.Event) {
	if !sg.IsEnabled() {
		return
	}
	s := Default
	switch {
	case e.Pos().In(sg.Bounds):
		s = Highlight
	case sg.IsActive():
		s = Pressed
	}
	if s != sg.state {
		sg.SetState(s)
	}
}
