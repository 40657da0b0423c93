// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import "cogentcore.org/colorwell/math32"

// DefaultDragThreshold is the default minimum distance, in
// device-independent units, that the pointer must travel before
// a press-drag gesture becomes a drag-and-drop session.
const DefaultDragThreshold = 4

type draggingValues struct {
	threshold  float32
	isDragging bool
	offset     math32.Vector2
}

// DraggingInformation tracks one press-drag-release gesture on a swatch.
type DraggingInformation struct {
	// Threshold is the minimum offset length for the drag to be valid.
	Threshold float32

	// IsDragging is whether a drag session has been started in this gesture.
	IsDragging bool

	// Offset is the cumulative pointer movement since the last reset.
	Offset math32.Vector2

	defaults draggingValues
}

// NewDraggingInformation returns dragging information whose
// [DraggingInformation.Reset] restores exactly the given values.
func NewDraggingInformation(threshold float32, isDragging bool, offset math32.Vector2) *DraggingInformation {
	di := &DraggingInformation{defaults: draggingValues{threshold, isDragging, offset}}
	di.Reset()
	return di
}

// DefaultDraggingInformation returns dragging information with
// [DefaultDragThreshold] and no offset.
func DefaultDraggingInformation() *DraggingInformation {
	return NewDraggingInformation(DefaultDragThreshold, false, math32.Vector2{})
}

// Reset restores the values given at construction.
func (di *DraggingInformation) Reset() {
	di.Threshold = di.defaults.threshold
	di.IsDragging = di.defaults.isDragging
	di.Offset = di.defaults.offset
}

// Accumulate adds the given pointer movement to the offset.
func (di *DraggingInformation) Accumulate(delta math32.Vector2) {
	di.Offset.SetAdd(delta)
}

// IsValid returns whether the offset has reached the threshold.
func (di *DraggingInformation) IsValid() bool {
	return di.Offset.Length() >= di.Threshold
}
