// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/colorwell/events/key"
	"cogentcore.org/colorwell/mimedata"
)

// DragDrop represents the drag-and-drop DragEnter and Drop events.
type DragDrop struct {
	Base

	// Data is the data being dragged.
	Data mimedata.Mimes

	// Source is the element that started the drag, if known.
	Source any
}

// NewDragDrop returns a new drag-and-drop event of the given type
// (DragEnter or Drop) at the given position.
func NewDragDrop(typ Types, where image.Point, data mimedata.Mimes, source any, mods key.Modifiers) *DragDrop {
	ev := &DragDrop{Data: data, Source: source}
	ev.Typ = typ
	ev.Init()
	ev.Where = where
	ev.Mods = mods
	return ev
}

func (ev *DragDrop) String() string {
	return fmt.Sprintf("%v{Data: %v, Pos: %v, Time: %v}", ev.Type(), ev.Data, ev.Where, ev.Time().Format("04:05"))
}
