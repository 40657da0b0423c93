// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"cogentcore.org/colorwell/abilities"
	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/math32"
	"cogentcore.org/colorwell/mimedata"
)

func swatchBehavior() behavior {
	b := baseBehavior()
	b.name = "Swatch"
	b.abilities = abilities.Set(abilities.Activatable, abilities.Draggable, abilities.Droppable)
	b.performAction = func(sg *Segment) bool { return false }
	b.mouseDown = swatchMouseDown
	b.mouseUp = swatchMouseUp
	b.mouseDrag = swatchMouseDrag
	return b
}

func swatchMouseDown(sg *Segment, e events.Event) {
	sg.drag.Reset()
	baseMouseDown(sg, e)
}

// swatchMouseDrag starts a color drag session the first time the
// accumulated pointer movement of the gesture reaches the threshold.
func swatchMouseDrag(sg *Segment, e events.Event) {
	if !sg.IsEnabled() {
		return
	}
	di := sg.drag
	di.Accumulate(math32.Vector2FromPoint(e.Pos().Sub(e.PrevPos())))
	if di.IsDragging || !di.IsValid() {
		return
	}
	di.IsDragging = true
	sg.revertState()
	if o := sg.Owner(); o != nil {
		o.StartColorDrag(sg, colors.ToMimes(o.Color()))
	}
}

// swatchMouseUp skips the action when the gesture became a drag.
func swatchMouseUp(sg *Segment, e events.Event) {
	defer sg.drag.Reset()
	if sg.drag.IsDragging {
		sg.pressMods = 0
		return
	}
	baseMouseUp(sg, e)
}

// CanDrop returns whether the segment would accept a drop of the
// given data, without changing anything.
func (sg *Segment) CanDrop(md mimedata.Mimes) bool {
	if !sg.kind.Abilities().HasFlag(abilities.Droppable) || !sg.IsEnabled() {
		return false
	}
	return md.HasType(colors.MimeType)
}

// Drop accepts a color dropped onto the segment and pushes it into the
// owner with every change side effect. It returns whether the drop was
// consumed; nothing changes when it was not.
func (sg *Segment) Drop(md mimedata.Mimes) bool {
	if !sg.CanDrop(md) {
		return false
	}
	c, err := colors.FromMimes(md)
	if err != nil {
		return false
	}
	o := sg.Owner()
	if o == nil {
		return false
	}
	o.SetColorWithOptions(c, AllChanges)
	return true
}
