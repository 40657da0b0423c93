// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"cogentcore.org/colorwell/mimedata"
	"cogentcore.org/colorwell/segment"
)

// Delegate is notified when the color of a [ColorWell] changes
// through user interaction.
type Delegate interface {
	ColorWellDidChange(cw *ColorWell, old color.RGBA)
}

// PopoverPresenter shows and hides swatch popovers for a backend.
type PopoverPresenter interface {
	// PresentPopover shows the given popover next to its anchor.
	PresentPopover(p *Popover)

	// DismissPopover hides the given popover.
	DismissPopover(p *Popover)
}

// DragSource runs drag-and-drop sessions for a backend.
type DragSource interface {
	// StartColorDrag begins a session that carries the given data,
	// originating from the given segment of the well. The session
	// ends by delivering an [events.Drop] to whatever is under
	// the pointer.
	StartColorDrag(cw *ColorWell, sg *segment.Segment, md mimedata.Mimes)
}
