// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the abilities of color well segments,
// which determine which events and states each kind of segment
// takes part in.
package abilities

import "strings"

// Abilities represent abilities of segments to take on different states
// and to receive different events.
type Abilities int64

const (
	// Activatable means it can be made Highlighted by pressing down on it,
	// and receives the perform-action call when released inside its bounds.
	Activatable Abilities = 1 << iota

	// Hoverable means it tracks the pointer entering and leaving it.
	Hoverable

	// Focusable means it can become the first responder and
	// receive key events directly.
	Focusable

	// Draggable means a press-drag gesture on it can start a
	// drag-and-drop session.
	Draggable

	// Droppable means it can receive DragEnter and Drop events.
	Droppable

	// Accessible means it is exposed as an element to assistive technology.
	Accessible
)

var abilitiesNames = []struct {
	flag Abilities
	name string
}{
	{Activatable, "Activatable"},
	{Hoverable, "Hoverable"},
	{Focusable, "Focusable"},
	{Draggable, "Draggable"},
	{Droppable, "Droppable"},
	{Accessible, "Accessible"},
}

// Set returns abilities with all of the given flags set.
func Set(flags ...Abilities) Abilities {
	var ab Abilities
	ab.SetFlag(true, flags...)
	return ab
}

// HasFlag returns whether these abilities include the given flag.
func (ab Abilities) HasFlag(f Abilities) bool {
	return ab&f != 0
}

// SetFlag sets the value of the given flags in these abilities.
func (ab *Abilities) SetFlag(on bool, f ...Abilities) {
	for _, fl := range f {
		if on {
			*ab |= fl
		} else {
			*ab &^= fl
		}
	}
}

func (ab Abilities) String() string {
	var names []string
	for _, an := range abilitiesNames {
		if ab.HasFlag(an.flag) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, "|")
}
