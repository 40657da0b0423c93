// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"image"
	"image/color"

	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/events/key"
	"cogentcore.org/colorwell/mimedata"
)

// testOwner is an [Owner] that records every request it receives.
type testOwner struct {
	color    color.RGBA
	active   bool
	enabled  bool
	size     ControlSize
	swatches []color.RGBA
	action   string
	target   ActionTarget

	// noPopover makes ShowPopover fail, like an owner without a presenter.
	noPopover bool

	segments []*Segment

	activations   int
	exclusive     bool
	deactivations int
	popovers      []*Segment
	secondary     int
	colorSets     []color.RGBA
	changeOpts    ChangeOptions
	drags         []mimedata.Mimes
	renders       int
}

func newTestOwner() *testOwner {
	return &testOwner{color: color.RGBA{10, 20, 30, 255}, enabled: true, size: Regular}
}

func (o *testOwner) Color() color.RGBA             { return o.color }
func (o *testOwner) IsActive() bool                { return o.active }
func (o *testOwner) IsEnabled() bool               { return o.enabled }
func (o *testOwner) ControlSize() ControlSize      { return o.size }
func (o *testOwner) Swatches() []color.RGBA        { return o.swatches }
func (o *testOwner) SecondaryAction() string       { return o.action }
func (o *testOwner) SecondaryTarget() ActionTarget { return o.target }

func (o *testOwner) SetColorWithOptions(c color.RGBA, opts ChangeOptions) {
	o.color = c
	o.colorSets = append(o.colorSets, c)
	o.changeOpts = opts
}

func (o *testOwner) Activate(exclusive bool) {
	o.activations++
	o.exclusive = exclusive
	o.active = true
	o.sync()
}

func (o *testOwner) Deactivate() {
	o.deactivations++
	o.active = false
	o.sync()
}

func (o *testOwner) sync() {
	for _, sg := range o.segments {
		sg.UpdateForCurrentActiveState(o.active)
	}
}

func (o *testOwner) ShowPopover(anchor *Segment) bool {
	if o.noPopover {
		return false
	}
	o.popovers = append(o.popovers, anchor)
	return true
}

func (o *testOwner) PerformSecondaryAction() bool {
	o.secondary++
	if o.action == "" || o.target == nil {
		return false
	}
	return o.target.HandleAction(o.action, o)
}

func (o *testOwner) StartColorDrag(sg *Segment, md mimedata.Mimes) {
	o.drags = append(o.drags, md)
}

func (o *testOwner) NeedsRender(sg *Segment) {
	o.renders++
}

// actions returns the number of high-level actions the owner received.
func (o *testOwner) actions() int {
	return o.activations + o.deactivations + len(o.popovers) + o.secondary
}

type testTarget struct {
	actions []string
	sender  any
}

func (t *testTarget) HandleAction(action string, sender any) bool {
	t.actions = append(t.actions, action)
	t.sender = sender
	return true
}

// newTestSegment returns a segment of the given kind owned by o,
// covering (0,0)-(20,20).
func newTestSegment(kind Kinds, o *testOwner) *Segment {
	sg := New(kind, StrongHandle(o))
	sg.Bounds = image.Rect(0, 0, 20, 20)
	o.segments = append(o.segments, sg)
	return sg
}

func mouseDown(sg *Segment, pt image.Point, mods key.Modifiers) events.Event {
	e := events.NewMouse(events.MouseDown, events.Left, pt, mods)
	sg.HandleEvent(e)
	return e
}

func mouseUp(sg *Segment, pt image.Point) events.Event {
	e := events.NewMouse(events.MouseUp, events.Left, pt, 0)
	sg.HandleEvent(e)
	return e
}

func mouseDrag(sg *Segment, from, to image.Point) events.Event {
	e := events.NewMouseDrag(events.Left, to, from, 0)
	sg.HandleEvent(e)
	return e
}

func click(sg *Segment, mods key.Modifiers) {
	mouseDown(sg, image.Pt(5, 5), mods)
	mouseUp(sg, image.Pt(6, 6))
}
