// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"cogentcore.org/colorwell/abilities"
	"cogentcore.org/colorwell/events"
)

// Kinds are the concrete kinds of segments. Everything that is
// shared by all segments of one kind (edge, abilities, and the
// behavior functions) is looked up in a static table keyed by kind.
type Kinds int32

const (
	// Swatch displays the color and supports dragging it out and
	// dropping a color in. It has no action of its own.
	Swatch Kinds = iota

	// BorderedSwatch is a swatch that fills the whole control and
	// toggles the color panel when clicked.
	BorderedSwatch

	// SinglePullDownSwatch is a swatch that fills the whole control
	// and shows the swatch popover or the secondary action when clicked.
	SinglePullDownSwatch

	// PartialPullDownSwatch is the pull-down swatch on the leading
	// edge of a control that also has a [Toggle].
	PartialPullDownSwatch

	// Toggle shows and hides the color panel from the trailing
	// edge of the control.
	Toggle

	KindsN
)

// Edges are the sides of the control that a segment is drawn on.
type Edges int32

const (
	// EdgeNone means the segment fills the whole control and is
	// drawn as a standalone rounded shape.
	EdgeNone Edges = iota

	// Leading means the segment is drawn as the rounded leading side of
	// a multi-segment shape, with its trailing side flattened.
	Leading

	// Trailing means the segment is drawn as the rounded trailing side of
	// a multi-segment shape, with its leading side flattened.
	Trailing
)

func (e Edges) String() string {
	switch e {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	}
	return "None"
}

// behavior is one row of the static dispatch table.
type behavior struct {
	name      string
	edge      Edges
	abilities abilities.Abilities
	label     string

	performAction    func(sg *Segment) bool
	canPerformAction func(sg *Segment) bool
	updateForActive  func(sg *Segment, active bool)
	needsRender      func(s State) bool

	mouseDown  func(sg *Segment, e events.Event)
	mouseUp    func(sg *Segment, e events.Event)
	mouseDrag  func(sg *Segment, e events.Event)
	mouseEnter func(sg *Segment, e events.Event)
	mouseLeave func(sg *Segment, e events.Event)
}

// behaviors is assigned in init because its functions
// refer back to it through [Kinds.PerformAction].
var behaviors [KindsN]behavior

func init() {
	behaviors = [KindsN]behavior{
		Swatch:                swatchBehavior(),
		BorderedSwatch:        borderedSwatchBehavior(),
		SinglePullDownSwatch:  pullDownSwatchBehavior("SinglePullDownSwatch", EdgeNone),
		PartialPullDownSwatch: pullDownSwatchBehavior("PartialPullDownSwatch", Leading),
		Toggle:                toggleBehavior(),
	}
}

func (k Kinds) behavior() *behavior {
	return &behaviors[k]
}

// IsValid returns whether k is one of the defined kinds.
func (k Kinds) IsValid() bool {
	return k >= 0 && k < KindsN
}

func (k Kinds) String() string {
	if !k.IsValid() {
		return "Kinds(invalid)"
	}
	return k.behavior().name
}

// Edge returns the edge that segments of this kind are drawn on.
func (k Kinds) Edge() Edges {
	return k.behavior().edge
}

// Abilities returns the abilities of segments of this kind.
func (k Kinds) Abilities() abilities.Abilities {
	return k.behavior().abilities
}

// IsSwatch returns whether this kind displays the color and owns
// dragging information.
func (k Kinds) IsSwatch() bool {
	return k != Toggle
}

// IsPullDown returns whether this kind shows the popover or the
// secondary action when clicked.
func (k Kinds) IsPullDown() bool {
	return k == SinglePullDownSwatch || k == PartialPullDownSwatch
}

// PerformAction performs the action of this kind on the given segment,
// which does not need to be of this kind. It returns whether an action
// was actually performed. This is how one kind explicitly borrows the
// behavior of another: a pull-down swatch that cannot show its popover
// calls Toggle.PerformAction(sg) with itself.
func (k Kinds) PerformAction(sg *Segment) bool {
	return k.behavior().performAction(sg)
}

// NeedsRender returns whether a segment of this kind needs to be
// redrawn when it transitions into the given state.
func (k Kinds) NeedsRender(s State) bool {
	return k.behavior().needsRender(s)
}

// baseBehavior returns the behavior shared by all segments unless a
// kind replaces an entry.
func baseBehavior() behavior {
	return behavior{
		abilities:        abilities.Set(abilities.Activatable, abilities.Focusable, abilities.Accessible),
		performAction:    func(sg *Segment) bool { return false },
		canPerformAction: func(sg *Segment) bool { return sg.IsEnabled() },
		updateForActive:  func(sg *Segment, active bool) {},
		needsRender:      func(s State) bool { return false },
		mouseDown:        baseMouseDown,
		mouseUp:          baseMouseUp,
		mouseDrag:        func(sg *Segment, e events.Event) {},
		mouseEnter:       func(sg *Segment, e events.Event) {},
		mouseLeave:       func(sg *Segment, e events.Event) {},
	}
}

// baseMouseDown highlights an enabled segment.
func baseMouseDown(sg *Segment, e events.Event) {
	if !sg.IsEnabled() {
		return
	}
	sg.pressMods = e.Modifiers()
	sg.SetState(Highlight)
}

// baseMouseUp performs the action of an enabled segment if the
// pointer is released inside of it. Releasing outside cancels.
func baseMouseUp(sg *Segment, e events.Event) {
	if !sg.IsEnabled() {
		return
	}
	if e.Pos().In(sg.Bounds) {
		sg.kind.PerformAction(sg)
	}
	sg.pressMods = 0
	if sg.state == Highlight {
		sg.revertState()
	}
}
