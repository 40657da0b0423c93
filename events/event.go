// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer, keyboard, drag-and-drop and
// value-change events delivered to color wells and their segments.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/colorwell/events/key"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// Pos returns the position of the event in window coordinates.
	Pos() image.Point

	// PrevPos returns the previous position, for drag events.
	PrevPos() image.Point

	// Modifiers returns the modifier keys present at the time of the event.
	Modifiers() key.Modifiers

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, stopping further processing.
	SetHandled()
}

// Base is the base type for events. It is designed to
// be embedded in specific event types.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the window-relative position of the event.
	Where image.Point

	// Prev is the previous position, for drag events.
	Prev image.Point

	// Button is the mouse button being pressed, for mouse events.
	Button Buttons

	// Mods are the modifier keys present at the time of the event.
	Mods key.Modifiers

	handled bool
}

// Init sets the generation time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) Pos() image.Point { return ev.Where }

func (ev *Base) PrevPos() image.Point { return ev.Prev }

func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }

func (ev *Base) IsHandled() bool { return ev.handled }

func (ev *Base) SetHandled() { ev.handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Mods: %v, Time: %v}", ev.Typ, ev.Where, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
}

// NewBase returns a new base event of the given type.
func NewBase(typ Types) *Base {
	ev := &Base{Typ: typ}
	ev.Init()
	return ev
}
