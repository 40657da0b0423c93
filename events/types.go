// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of event, and also the
// level at which one can select which events to listen to.
// The type includes both the source and the "action" of the
// event (e.g., MouseDown and MouseUp are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	// It drives hover tracking.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there is a button
	// down. The start pos indicates where the button was first pressed,
	// and the prev pos where the last drag or down event happened.
	MouseDrag

	// MouseEnter is when the mouse enters the bounding box of a segment.
	MouseEnter

	// MouseLeave is when the mouse leaves the bounding box of a segment
	// that previously had a MouseEnter event.
	MouseLeave

	// DragEnter is like MouseEnter but during a drag-n-drop sequence,
	// and carries the dragged data so the target can validate it.
	DragEnter

	// Drop is the final action of the drag-n-drop sequence, when
	// an item being dragged is dropped on top of a target.
	Drop

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// Change is when the value represented by a control has changed.
	Change

	// Action is when a control fires its action after a user-driven
	// change of its value.
	Action

	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "MouseEnter", "MouseLeave", "DragEnter", "Drop", "KeyDown", "KeyUp", "Change", "Action"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}

// IsMouse returns whether the type is one of the pointer types.
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= MouseLeave
}

// IsKey returns whether the type is a keyboard type.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}
