// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"image/color"
	"log/slog"
	"slices"
	"weak"

	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/math32"
	"cogentcore.org/colorwell/mimedata"
	"cogentcore.org/colorwell/segment"
	m32 "github.com/chewxy/math32"
)

// ColorWell is a control that displays a color value and lets the
// user change it through a shared color [Panel], a popover of preset
// swatches, or by dragging and dropping colors. It is composed of one
// or two segments determined by its [Styles], and implements
// [segment.Owner] for them.
type ColorWell struct {
	color    color.RGBA
	style    Styles
	size     segment.ControlSize
	swatches []color.RGBA

	popoverColumns  int
	secondaryAction string
	secondaryTarget segment.ActionTarget
	delegate        Delegate

	enabled bool
	active  bool
	closed  bool

	panel      *Panel
	presenter  PopoverPresenter
	dragSource DragSource

	// renderHook is called whenever a segment needs to be redrawn.
	renderHook func(sg *segment.Segment)

	dragThreshold float32
	scale         float32
	bounds        image.Rectangle

	listeners events.Listeners

	segments []*segment.Segment
	handle   segment.Handle

	// pressed is the segment that received the current press,
	// which gets all mouse events until the release.
	pressed *segment.Segment
	hovered *segment.Segment
	focused int
	popover *Popover
}

// NewColorWell returns a new enabled color well in [StyleDefault]
// that shares the given panel, which may be nil.
func NewColorWell(panel *Panel) *ColorWell {
	cw := &ColorWell{
		color:          colors.White,
		style:          StyleDefault,
		size:           segment.Regular,
		popoverColumns: DefaultPopoverColumns,
		enabled:        true,
		panel:          panel,
		dragThreshold:  segment.DefaultDragThreshold,
		scale:          1,
		focused:        -1,
	}
	wp := weak.Make(cw)
	cw.handle = func() segment.Owner {
		if w := wp.Value(); w != nil && !w.closed {
			return w
		}
		return nil
	}
	cw.buildSegments()
	return cw
}

func (cw *ColorWell) String() string {
	return "ColorWell(" + cw.style.String() + ", " + colors.AsHex(cw.color) + ")"
}

// Color returns the current color value.
func (cw *ColorWell) Color() color.RGBA { return cw.color }

// Style returns the visual style.
func (cw *ColorWell) Style() Styles { return cw.style }

// IsActive returns whether the well is driving the color panel.
func (cw *ColorWell) IsActive() bool { return cw.active }

// IsEnabled returns whether the well accepts interaction.
func (cw *ColorWell) IsEnabled() bool { return cw.enabled && !cw.closed }

func (cw *ColorWell) ControlSize() segment.ControlSize { return cw.size }

func (cw *ColorWell) Swatches() []color.RGBA { return cw.swatches }

func (cw *ColorWell) PopoverColumns() int { return cw.popoverColumns }

func (cw *ColorWell) SecondaryAction() string { return cw.secondaryAction }

func (cw *ColorWell) SecondaryTarget() segment.ActionTarget { return cw.secondaryTarget }

// Panel returns the shared color panel, which may be nil.
func (cw *ColorWell) Panel() *Panel { return cw.panel }

// Popover returns the open popover, if any.
func (cw *ColorWell) Popover() *Popover { return cw.popover }

// Segments returns the segments of the well, in leading to
// trailing order.
func (cw *ColorWell) Segments() []*segment.Segment { return cw.segments }

// Bounds returns the rectangle of the well.
func (cw *ColorWell) Bounds() image.Rectangle { return cw.bounds }

// Scale returns the display scale used for layout.
func (cw *ColorWell) Scale() float32 { return cw.scale }

// SetColor sets the color without any change notifications.
func (cw *ColorWell) SetColor(c color.RGBA) *ColorWell {
	cw.SetColorWithOptions(c, 0)
	return cw
}

// SetStyle sets the style, replacing the segments of the well.
func (cw *ColorWell) SetStyle(st Styles) *ColorWell {
	if st < 0 || st >= StylesN {
		st = StyleDefault
	}
	if st == cw.style && cw.segments != nil {
		return cw
	}
	cw.style = st
	cw.buildSegments()
	return cw
}

func (cw *ColorWell) SetControlSize(size segment.ControlSize) *ColorWell {
	cw.size = size
	cw.needsRenderAll()
	return cw
}

// SetSwatches sets the preset colors shown in the popover.
func (cw *ColorWell) SetSwatches(swatches ...color.RGBA) *ColorWell {
	cw.swatches = swatches
	cw.needsRenderAll()
	return cw
}

func (cw *ColorWell) SetPopoverColumns(cols int) *ColorWell {
	cw.popoverColumns = cols
	return cw
}

// SetEnabled sets whether the well accepts interaction.
// Disabling an active well deactivates it.
func (cw *ColorWell) SetEnabled(on bool) *ColorWell {
	if cw.enabled == on {
		return cw
	}
	cw.enabled = on
	if !on {
		cw.Deactivate()
		if cw.popover != nil {
			cw.popover.Close()
		}
		for _, sg := range cw.segments {
			sg.CancelInteraction()
		}
		cw.pressed, cw.hovered = nil, nil
		cw.focused = -1
	}
	cw.needsRenderAll()
	return cw
}

// SetSecondaryAction sets the action that pull-down segments send to
// the given target instead of showing the popover.
func (cw *ColorWell) SetSecondaryAction(action string, target segment.ActionTarget) *ColorWell {
	cw.secondaryAction = action
	cw.secondaryTarget = target
	return cw
}

func (cw *ColorWell) SetDelegate(d Delegate) *ColorWell {
	cw.delegate = d
	return cw
}

func (cw *ColorWell) SetPopoverPresenter(pp PopoverPresenter) *ColorWell {
	cw.presenter = pp
	return cw
}

func (cw *ColorWell) SetDragSource(ds DragSource) *ColorWell {
	cw.dragSource = ds
	return cw
}

// SetRenderHook sets the function called when a segment needs
// to be redrawn.
func (cw *ColorWell) SetRenderHook(fun func(sg *segment.Segment)) *ColorWell {
	cw.renderHook = fun
	return cw
}

// SetDragThreshold sets the distance the pointer has to move during
// a press on a swatch before a drag session starts.
func (cw *ColorWell) SetDragThreshold(threshold float32) *ColorWell {
	cw.dragThreshold = threshold
	for _, sg := range cw.segments {
		sg.SetDraggingInformation(cw.newDraggingInformation())
	}
	return cw
}

// SetScale sets the display scale used for layout.
func (cw *ColorWell) SetScale(scale float32) *ColorWell {
	if scale <= 0 {
		scale = 1
	}
	cw.scale = scale
	cw.layout()
	return cw
}

// SetBounds sets the rectangle of the well and lays out its segments.
func (cw *ColorWell) SetBounds(r image.Rectangle) *ColorWell {
	cw.bounds = r
	cw.layout()
	return cw
}

// OnChange adds an event listener function for [events.Change] events,
// which are sent when the color changes through user interaction.
func (cw *ColorWell) OnChange(fun func(e events.Event)) *ColorWell {
	cw.listeners.Add(events.Change, fun)
	return cw
}

// OnAction adds an event listener function for [events.Action] events,
// which are the action of the well.
func (cw *ColorWell) OnAction(fun func(e events.Event)) *ColorWell {
	cw.listeners.Add(events.Action, fun)
	return cw
}

func (cw *ColorWell) newDraggingInformation() *segment.DraggingInformation {
	return segment.NewDraggingInformation(cw.dragThreshold, false, math32.Vector2{})
}

// buildSegments detaches the current segments and builds
// new ones for the style.
func (cw *ColorWell) buildSegments() {
	if cw.popover != nil {
		cw.popover.Close()
	}
	for _, sg := range cw.segments {
		sg.Detach()
	}
	cw.segments = nil
	cw.pressed, cw.hovered, cw.focused = nil, nil, -1
	for _, k := range cw.style.Kinds() {
		sg := segment.New(k, cw.handle)
		sg.SetDraggingInformation(cw.newDraggingInformation())
		cw.segments = append(cw.segments, sg)
	}
	cw.layout()
}

// layout sets the bounds of the segments. A trailing toggle gets
// its fixed width, scaled, and the other segment gets the rest.
func (cw *ColorWell) layout() {
	r := cw.bounds
	for _, sg := range cw.segments {
		sg.Bounds = r
	}
	if len(cw.segments) < 2 {
		return
	}
	w := int(m32.Round(segment.ToggleWidth * cw.scale))
	w = min(w, r.Dx())
	split := r.Max.X - w
	for _, sg := range cw.segments {
		switch sg.Edge() {
		case segment.Leading:
			sg.Bounds = image.Rect(r.Min.X, r.Min.Y, split, r.Max.Y)
		case segment.Trailing:
			sg.Bounds = image.Rect(split, r.Min.Y, r.Max.X, r.Max.Y)
		}
	}
}

// SetColorWithOptions sets the color with the given change side
// effects. Nothing happens if the color is unchanged.
func (cw *ColorWell) SetColorWithOptions(c color.RGBA, opts segment.ChangeOptions) {
	if c == cw.color {
		return
	}
	old := cw.color
	cw.color = c
	if cw.active && cw.panel != nil {
		cw.panel.wellChanged(cw, c)
	}
	if opts.Has(segment.NotifyDelegate) && cw.delegate != nil {
		cw.delegate.ColorWellDidChange(cw, old)
	}
	if opts.Has(segment.NotifyObservers) {
		cw.listeners.Call(events.NewColorChange(events.Change, old, c))
	}
	if opts.Has(segment.SendAction) {
		cw.listeners.Call(events.NewColorChange(events.Action, old, c))
	}
	cw.needsRenderAll()
}

// Activate makes the well drive the color panel. If exclusive, all
// other wells are detached from the panel. Disabled wells cannot
// be activated.
func (cw *ColorWell) Activate(exclusive bool) {
	if !cw.IsEnabled() {
		return
	}
	cw.active = true
	if cw.panel != nil {
		cw.panel.Attach(cw, exclusive)
	}
	slog.Debug("colorwell: activated", "well", cw.String(), "exclusive", exclusive)
	cw.syncSegments()
}

// Deactivate stops the well from driving the color panel.
func (cw *ColorWell) Deactivate() {
	if !cw.active {
		return
	}
	if cw.panel != nil && cw.panel.IsAttached(cw) {
		cw.panel.Detach(cw)
		return
	}
	cw.panelDetached()
}

// panelDetached is called by the panel when the well leaves it.
func (cw *ColorWell) panelDetached() {
	if !cw.active {
		return
	}
	cw.active = false
	slog.Debug("colorwell: deactivated", "well", cw.String())
	cw.syncSegments()
}

func (cw *ColorWell) syncSegments() {
	for _, sg := range cw.segments {
		sg.UpdateForCurrentActiveState(cw.active)
	}
}

// ShowPopover opens the swatch popover anchored to the given segment
// through the popover presenter. It returns false if there are no
// swatches or no presenter.
func (cw *ColorWell) ShowPopover(anchor *segment.Segment) bool {
	if len(cw.swatches) == 0 || cw.presenter == nil {
		return false
	}
	if cw.popover != nil {
		cw.popover.Close()
	}
	cw.popover = newPopover(cw, anchor)
	cw.presenter.PresentPopover(cw.popover)
	return true
}

// PerformSecondaryAction sends the secondary action to its target,
// returning whether it was handled.
func (cw *ColorWell) PerformSecondaryAction() bool {
	if cw.secondaryAction == "" || cw.secondaryTarget == nil {
		return false
	}
	return cw.secondaryTarget.HandleAction(cw.secondaryAction, cw)
}

// StartColorDrag hands a drag session to the drag source.
func (cw *ColorWell) StartColorDrag(sg *segment.Segment, md mimedata.Mimes) {
	if cw.dragSource == nil {
		slog.Debug("colorwell: no drag source for color drag", "data", md.Text(mimedata.TextPlain))
		return
	}
	cw.dragSource.StartColorDrag(cw, sg, md)
}

// NeedsRender calls the render hook for the given segment.
func (cw *ColorWell) NeedsRender(sg *segment.Segment) {
	if cw.renderHook != nil {
		cw.renderHook(sg)
	}
}

func (cw *ColorWell) needsRenderAll() {
	for _, sg := range cw.segments {
		cw.NeedsRender(sg)
	}
}

// Close deactivates the well, closes any popover and detaches all
// segments from it. The well is unusable afterwards.
func (cw *ColorWell) Close() {
	if cw.closed {
		return
	}
	cw.Deactivate()
	if cw.popover != nil {
		cw.popover.Close()
	}
	for _, sg := range cw.segments {
		sg.Detach()
	}
	cw.closed = true
	cw.pressed, cw.hovered, cw.focused = nil, nil, -1
}

// IsClosed returns whether [ColorWell.Close] has been called.
func (cw *ColorWell) IsClosed() bool {
	return cw.closed
}

// SegmentAt returns the segment under the given point, or nil.
func (cw *ColorWell) SegmentAt(pt image.Point) *segment.Segment {
	for _, sg := range cw.segments {
		if pt.In(sg.Bounds) {
			return sg
		}
	}
	return nil
}

// Focused returns the segment with keyboard focus, or nil.
func (cw *ColorWell) Focused() *segment.Segment {
	if cw.focused < 0 || cw.focused >= len(cw.segments) {
		return nil
	}
	return cw.segments[cw.focused]
}

// FocusNext moves the keyboard focus to the next segment that accepts
// it, wrapping around, and returns whether any segment has focus.
func (cw *ColorWell) FocusNext() bool {
	n := len(cw.segments)
	for i := 1; i <= n; i++ {
		j := (cw.focused + i) % n
		if j < 0 {
			j += n
		}
		if cw.segments[j].AcceptsFocus() {
			cw.focused = j
			return true
		}
	}
	cw.focused = -1
	return false
}

// ClearFocus removes the keyboard focus from the well.
func (cw *ColorWell) ClearFocus() {
	cw.focused = -1
}

// HandleEvent routes the given event to the segments of the well.
// A press captures the pointer for its segment until the release,
// movement generates enter and leave events for hoverable segments,
// keys go to the focused segment, and drag-and-drop events go to the
// segment under the pointer.
func (cw *ColorWell) HandleEvent(e events.Event) {
	if cw.closed {
		return
	}
	switch e.Type() {
	case events.MouseDown:
		sg := cw.SegmentAt(e.Pos())
		if sg == nil {
			return
		}
		cw.pressed = sg
		if sg.AcceptsFocus() {
			cw.focused = slices.Index(cw.segments, sg)
		}
		sg.HandleEvent(e)
	case events.MouseDrag:
		if cw.pressed != nil {
			cw.pressed.HandleEvent(e)
		}
	case events.MouseUp:
		if sg := cw.pressed; sg != nil {
			cw.pressed = nil
			sg.HandleEvent(e)
		}
	case events.MouseMove:
		cw.setHovered(cw.SegmentAt(e.Pos()), e)
	case events.MouseLeave:
		cw.setHovered(nil, e)
	case events.KeyDown, events.KeyUp:
		if sg := cw.Focused(); sg != nil {
			sg.HandleEvent(e)
		}
	case events.DragEnter, events.Drop:
		if sg := cw.SegmentAt(e.Pos()); sg != nil {
			sg.HandleEvent(e)
		}
	}
}

func (cw *ColorWell) setHovered(sg *segment.Segment, e events.Event) {
	if sg == cw.hovered {
		return
	}
	if cw.hovered != nil {
		cw.hovered.HandleEvent(events.NewMouse(events.MouseLeave, events.NoButton, e.Pos(), e.Modifiers()))
	}
	cw.hovered = sg
	if sg != nil {
		sg.HandleEvent(events.NewMouse(events.MouseEnter, events.NoButton, e.Pos(), e.Modifiers()))
	}
}
