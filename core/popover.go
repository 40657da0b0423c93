// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"slices"

	"cogentcore.org/colorwell/segment"
)

// DefaultPopoverColumns is the number of swatch columns in a popover
// when the well does not specify one.
const DefaultPopoverColumns = 8

// Popover is a grid of preset swatches shown by a pull-down segment.
// Selecting one sets the color of the well and closes the popover.
type Popover struct {

	// Anchor is the segment the popover was opened from.
	Anchor *segment.Segment

	// Well is the color well the popover belongs to.
	Well *ColorWell

	// Swatches are the colors to choose from, copied when the
	// popover is opened.
	Swatches []color.RGBA

	// Columns is the number of swatches in each row.
	Columns int

	closed bool
}

func newPopover(cw *ColorWell, anchor *segment.Segment) *Popover {
	cols := cw.popoverColumns
	if cols <= 0 {
		cols = DefaultPopoverColumns
	}
	return &Popover{Anchor: anchor, Well: cw, Swatches: slices.Clone(cw.swatches), Columns: cols}
}

// Rows returns the number of rows in the swatch grid.
func (p *Popover) Rows() int {
	if p.Columns <= 0 {
		return 0
	}
	return (len(p.Swatches) + p.Columns - 1) / p.Columns
}

// Index returns the swatch index at the given row and column,
// and -1 if there is no swatch there.
func (p *Popover) Index(row, col int) int {
	if row < 0 || col < 0 || col >= p.Columns {
		return -1
	}
	i := row*p.Columns + col
	if i >= len(p.Swatches) {
		return -1
	}
	return i
}

// IsClosed returns whether the popover has been closed.
func (p *Popover) IsClosed() bool {
	return p.closed
}

// Select sets the color of the well to the swatch at the given
// index and closes the popover. It returns false if the index is
// out of range or the popover is already closed.
func (p *Popover) Select(i int) bool {
	if p.closed || i < 0 || i >= len(p.Swatches) {
		return false
	}
	c := p.Swatches[i]
	p.Close()
	p.Well.SetColorWithOptions(c, segment.AllChanges)
	return true
}

// Close closes the popover if it is open.
func (p *Popover) Close() {
	if p.closed {
		return
	}
	p.closed = true
	cw := p.Well
	if cw.popover == p {
		cw.popover = nil
	}
	if cw.presenter != nil {
		cw.presenter.DismissPopover(p)
	}
	if p.Anchor != nil {
		cw.NeedsRender(p.Anchor)
	}
}
