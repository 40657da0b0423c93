// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment implements the interactive regions that a color well
// is composed of: their interaction state machine, the drag-out of the
// color value, and the per-kind action dispatch.
//
// A [Segment] is a plain state record tagged with its [Kinds].
// All kind-specific behavior is resolved statically from the kind,
// never from per-instance overrides, so that one kind can explicitly
// perform the action of another kind on the same segment.
package segment

import (
	"fmt"
	"image"

	"cogentcore.org/colorwell/abilities"
	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/events/key"
)

// Segment is one interactive region of a color well.
type Segment struct {
	kind   Kinds
	handle Handle

	state     State
	prevState State

	// Bounds is the rectangle of the segment in window coordinates.
	Bounds image.Rectangle

	// drag is only non-nil for swatch kinds.
	drag *DraggingInformation

	// pressMods are the modifiers of the press that is being handled.
	pressMods key.Modifiers

	hovered bool
}

// New returns a new segment of the given kind, owned through the given
// handle. Swatch kinds get [DefaultDraggingInformation]. The segment state
// is synchronized with the activation state of the owner.
func New(kind Kinds, h Handle) *Segment {
	if !kind.IsValid() {
		panic(fmt.Sprintf("segment.New: invalid kind %d", kind))
	}
	sg := &Segment{kind: kind, handle: h}
	if kind.Abilities().HasFlag(abilities.Draggable) {
		sg.drag = DefaultDraggingInformation()
	}
	sg.UpdateForCurrentActiveState(sg.IsActive())
	return sg
}

func (sg *Segment) String() string {
	return fmt.Sprintf("%v{State: %v, Bounds: %v}", sg.kind, sg.state, sg.Bounds)
}

// Kind returns the kind of the segment.
func (sg *Segment) Kind() Kinds {
	return sg.kind
}

// Edge returns the edge of the segment, which is shared by its kind.
func (sg *Segment) Edge() Edges {
	return sg.kind.Edge()
}

// Owner returns the owner of the segment, or nil if it is gone
// or the segment has been detached.
func (sg *Segment) Owner() Owner {
	if sg.handle == nil {
		return nil
	}
	return sg.handle()
}

// Detach drops the reference to the owner. Every owner query
// then returns its default.
func (sg *Segment) Detach() {
	sg.handle = nil
}

// IsActive returns whether the owner is active, and false without owner.
func (sg *Segment) IsActive() bool {
	if o := sg.Owner(); o != nil {
		return o.IsActive()
	}
	return false
}

// IsEnabled returns whether the owner is enabled, and false without owner.
func (sg *Segment) IsEnabled() bool {
	if o := sg.Owner(); o != nil {
		return o.IsEnabled()
	}
	return false
}

// State returns the current state.
func (sg *Segment) State() State {
	return sg.state
}

// PrevState returns the state before the last [Segment.SetState].
func (sg *Segment) PrevState() State {
	return sg.prevState
}

// SetState sets the state, remembering the previous one, and asks the
// owner to redraw the segment if its kind needs it for the new state.
func (sg *Segment) SetState(s State) {
	sg.prevState = sg.state
	sg.state = s
	if !sg.kind.NeedsRender(s) {
		return
	}
	if o := sg.Owner(); o != nil {
		o.NeedsRender(sg)
	}
}

// revertState goes back to the previous state, which is never
// Highlight when reverting out of a press.
func (sg *Segment) revertState() {
	prev := sg.prevState
	if prev == Highlight {
		prev = Default
	}
	sg.SetState(prev)
}

// CancelInteraction abandons any press, hover or drag in progress.
// A Highlight or Hover state goes back to the resting state for the
// current activation of the owner.
func (sg *Segment) CancelInteraction() {
	sg.pressMods = 0
	sg.hovered = false
	if sg.drag != nil {
		sg.drag.Reset()
	}
	if sg.state != Highlight && sg.state != Hover {
		return
	}
	sg.SetState(Default)
	sg.UpdateForCurrentActiveState(sg.IsActive())
}

// IsHovered returns whether the pointer is over a segment that
// tracks hovering.
func (sg *Segment) IsHovered() bool {
	return sg.hovered
}

// DraggingInformation returns the dragging information, which is
// nil for kinds that cannot be dragged.
func (sg *Segment) DraggingInformation() *DraggingInformation {
	return sg.drag
}

// SetDraggingInformation replaces the dragging information of a swatch.
// It does nothing for kinds that cannot be dragged.
func (sg *Segment) SetDraggingInformation(di *DraggingInformation) *Segment {
	if sg.drag != nil && di != nil {
		sg.drag = di
	}
	return sg
}

// PerformAction performs the action of the segment's own kind.
func (sg *Segment) PerformAction() bool {
	return sg.kind.PerformAction(sg)
}

// CanPerformAction returns whether the action of the segment can
// currently do something other than its fallback.
func (sg *Segment) CanPerformAction() bool {
	return sg.kind.behavior().canPerformAction(sg)
}

// UpdateForCurrentActiveState resynchronizes the state with the given
// activation state of the owner. Owners call it on every segment
// whenever their activation changes.
func (sg *Segment) UpdateForCurrentActiveState(active bool) {
	sg.kind.behavior().updateForActive(sg, active)
}

// AcceptsFocus returns whether the segment can become the first responder
// and receive key events.
func (sg *Segment) AcceptsFocus() bool {
	return sg.kind.Abilities().HasFlag(abilities.Focusable) && sg.IsEnabled()
}

// ValidateAndPerformAction performs the action in response to the given
// key event. It only succeeds if the segment is enabled and the event is a
// key down whose text is a single space; any other event is left alone.
func (sg *Segment) ValidateAndPerformAction(e events.Event) bool {
	if !sg.IsEnabled() || e.Type() != events.KeyDown {
		return false
	}
	ke, ok := e.(*events.Key)
	if !ok || ke.Text != " " {
		return false
	}
	sg.pressMods = ke.Mods
	defer func() { sg.pressMods = 0 }()
	return sg.PerformAction()
}

// HandleEvent handles the given event according to the kind of the segment.
// The event is marked as handled when the segment consumed it.
func (sg *Segment) HandleEvent(e events.Event) {
	b := sg.kind.behavior()
	switch e.Type() {
	case events.MouseDown:
		b.mouseDown(sg, e)
	case events.MouseUp:
		b.mouseUp(sg, e)
	case events.MouseDrag:
		b.mouseDrag(sg, e)
	case events.MouseEnter:
		if b.abilities.HasFlag(abilities.Hoverable) {
			b.mouseEnter(sg, e)
		}
		return
	case events.MouseLeave:
		if b.abilities.HasFlag(abilities.Hoverable) {
			b.mouseLeave(sg, e)
		}
		return
	case events.KeyDown:
		if sg.ValidateAndPerformAction(e) {
			e.SetHandled()
		}
		return
	case events.DragEnter:
		if dd, ok := e.(*events.DragDrop); ok && sg.CanDrop(dd.Data) {
			e.SetHandled()
		}
		return
	case events.Drop:
		if dd, ok := e.(*events.DragDrop); ok && sg.Drop(dd.Data) {
			e.SetHandled()
		}
		return
	default:
		return
	}
	if sg.IsEnabled() {
		e.SetHandled()
	}
}
