// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"cogentcore.org/colorwell/abilities"
	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/events/key"
)

func pullDownSwatchBehavior(name string, edge Edges) behavior {
	b := swatchBehavior()
	b.name = name
	b.edge = edge
	b.label = "color options"
	b.abilities.SetFlag(true, abilities.Hoverable, abilities.Accessible)
	b.performAction = pullDownPerformAction
	b.canPerformAction = pullDownCanPerformAction
	b.needsRender = func(s State) bool { return true }
	b.mouseEnter = func(sg *Segment, e events.Event) {
		sg.hovered = true
		if sg.IsEnabled() {
			sg.SetState(Hover)
		}
	}
	b.mouseLeave = func(sg *Segment, e events.Event) {
		sg.hovered = false
		if sg.IsEnabled() {
			sg.SetState(Default)
		}
	}
	return b
}

// pullDownCanPerformAction: a secondary action with a target, or
// else a non-empty list of swatches for the popover.
func pullDownCanPerformAction(sg *Segment) bool {
	o := sg.Owner()
	if o == nil {
		return false
	}
	if o.SecondaryAction() != "" && o.SecondaryTarget() != nil {
		return true
	}
	return len(o.Swatches()) > 0
}

// pullDownPerformAction behaves as a toggle when shift is held or there
// is nothing else to do. Otherwise the secondary action takes priority
// over the popover, and a popover the owner cannot show falls back to
// the toggle.
func pullDownPerformAction(sg *Segment) bool {
	if sg.pressMods.HasFlag(key.Shift) || !sg.CanPerformAction() {
		return Toggle.PerformAction(sg)
	}
	o := sg.Owner()
	if o == nil {
		return false
	}
	if o.SecondaryAction() != "" && o.SecondaryTarget() != nil {
		return o.PerformSecondaryAction()
	}
	if o.ShowPopover(sg) {
		return true
	}
	return Toggle.PerformAction(sg)
}

// ShowsCaret returns whether a single pull-down swatch should draw its
// disclosure caret: while hovered or highlighted with something to show.
func (sg *Segment) ShowsCaret() bool {
	if sg.kind != SinglePullDownSwatch || !sg.IsEnabled() {
		return false
	}
	return (sg.state == Hover || sg.state == Highlight) && sg.CanPerformAction()
}
