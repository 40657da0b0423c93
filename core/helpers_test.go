// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"image/color"

	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/events/key"
	"cogentcore.org/colorwell/mimedata"
	"cogentcore.org/colorwell/segment"
)

type testPresenter struct {
	presented []*Popover
	dismissed []*Popover
}

func (tp *testPresenter) PresentPopover(p *Popover) { tp.presented = append(tp.presented, p) }
func (tp *testPresenter) DismissPopover(p *Popover) { tp.dismissed = append(tp.dismissed, p) }

type testDragSource struct {
	wells []*ColorWell
	data  []mimedata.Mimes
}

func (ds *testDragSource) StartColorDrag(cw *ColorWell, sg *segment.Segment, md mimedata.Mimes) {
	ds.wells = append(ds.wells, cw)
	ds.data = append(ds.data, md)
}

type testTarget struct {
	actions []string
	senders []any
}

func (tt *testTarget) HandleAction(action string, sender any) bool {
	tt.actions = append(tt.actions, action)
	tt.senders = append(tt.senders, sender)
	return true
}

type testDelegate struct {
	olds []color.RGBA
}

func (td *testDelegate) ColorWellDidChange(cw *ColorWell, old color.RGBA) {
	td.olds = append(td.olds, old)
}

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

// newTestWell returns an expanded well at (0,0)-(60,20) with a presenter
// and drag source attached.
func newTestWell(panel *Panel) (*ColorWell, *testPresenter, *testDragSource) {
	tp := &testPresenter{}
	ds := &testDragSource{}
	cw := NewColorWell(panel).
		SetStyle(StyleExpanded).
		SetBounds(image.Rect(0, 0, 60, 20)).
		SetPopoverPresenter(tp).
		SetDragSource(ds)
	return cw, tp, ds
}

func press(cw *ColorWell, pt image.Point, mods key.Modifiers) {
	cw.HandleEvent(events.NewMouse(events.MouseDown, events.Left, pt, mods))
}

func release(cw *ColorWell, pt image.Point) {
	cw.HandleEvent(events.NewMouse(events.MouseUp, events.Left, pt, 0))
}

func clickAt(cw *ColorWell, pt image.Point) {
	press(cw, pt, 0)
	release(cw, pt)
}

func dragTo(cw *ColorWell, from, to image.Point) {
	cw.HandleEvent(events.NewMouseDrag(events.Left, to, from, 0))
}

func moveTo(cw *ColorWell, from, to image.Point) {
	cw.HandleEvent(events.NewMouseMove(to, from, 0))
}
