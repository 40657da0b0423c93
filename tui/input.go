// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"image"

	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/events/key"
	tea "github.com/charmbracelet/bubbletea"
)

// mouseEvent translates a bubbletea mouse message into an event
// in cell coordinates. It returns nil for messages the wells do
// not handle, such as the wheel and buttons other than the left one.
func (m *Model) mouseEvent(msg tea.MouseMsg) events.Event {
	pt := image.Pt(msg.X, msg.Y)
	var mods key.Modifiers
	mods.SetFlag(msg.Shift, key.Shift)
	mods.SetFlag(msg.Alt, key.Alt)
	mods.SetFlag(msg.Ctrl, key.Control)
	prev := m.lastMouse
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return events.NewMouse(events.MouseDown, events.Left, pt, mods)
	case tea.MouseActionRelease:
		if m.pressed == nil && m.drag == nil {
			return nil
		}
		return events.NewMouse(events.MouseUp, events.Left, pt, mods)
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			return events.NewMouseDrag(events.Left, pt, prev, mods)
		}
		if msg.Button == tea.MouseButtonNone {
			return events.NewMouseMove(pt, prev, mods)
		}
	}
	return nil
}

// handleMouse routes a mouse message to the popover or the wells.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	e := m.mouseEvent(msg)
	m.lastMouse = image.Pt(msg.X, msg.Y)
	if e == nil {
		return
	}
	pt := e.Pos()
	switch e.Type() {
	case events.MouseDown:
		if m.popover != nil {
			if i, ok := m.popoverIndexAt(pt); ok {
				m.popover.Select(i)
				return
			}
			m.popover.Close()
		}
		cw := m.wellAt(pt)
		if cw == nil {
			return
		}
		m.pressed = cw
		cw.HandleEvent(e)
		if cw.Focused() != nil {
			m.setFocus(m.wellIndex(cw))
		}
	case events.MouseDrag:
		if m.pressed != nil {
			m.pressed.HandleEvent(e)
		}
		if m.drag != nil {
			m.dragOver(pt)
		}
	case events.MouseUp:
		if cw := m.pressed; cw != nil {
			m.pressed = nil
			cw.HandleEvent(e)
		}
		if m.drag != nil {
			m.endDrag(pt, e.Modifiers())
		}
	case events.MouseMove:
		cw := m.wellAt(pt)
		if cw != m.hovered && m.hovered != nil {
			m.hovered.HandleEvent(events.NewMouse(events.MouseLeave, events.NoButton, pt, e.Modifiers()))
		}
		m.hovered = cw
		if cw != nil {
			cw.HandleEvent(e)
		}
	}
}

// dragOver tracks the well under a dragged color, offering
// the data to it when the pointer enters it.
func (m *Model) dragOver(pt image.Point) {
	d := m.drag
	d.pos = pt
	cw := m.wellAt(pt)
	if cw == d.over {
		return
	}
	m.invalidate(d.over)
	d.over = nil
	if cw == nil {
		return
	}
	e := events.NewDragDrop(events.DragEnter, pt, d.data, d.source, 0)
	cw.HandleEvent(e)
	if e.IsHandled() {
		d.over = cw
		m.invalidate(cw)
	}
}

// endDrag drops the dragged color on the well under the pointer.
func (m *Model) endDrag(pt image.Point, mods key.Modifiers) {
	d := m.drag
	m.drag = nil
	m.invalidate(d.over)
	cw := m.wellAt(pt)
	if cw == nil {
		m.status = "drag cancelled"
		return
	}
	e := events.NewDragDrop(events.Drop, pt, d.data, d.source, mods)
	cw.HandleEvent(e)
	if !e.IsHandled() {
		m.status = "drop rejected"
	}
}

// popoverRect returns the cells covered by the open popover,
// including its border.
func (m *Model) popoverRect() image.Rectangle {
	p := m.popover
	if p == nil {
		return image.Rectangle{}
	}
	x := p.Well.Bounds().Min.X
	return image.Rect(x, popoverTop, x+p.Columns*swatchCell+2, popoverTop+p.Rows()+2)
}

// popoverIndexAt returns the index of the popover swatch at the given cell.
func (m *Model) popoverIndexAt(pt image.Point) (int, bool) {
	r := m.popoverRect()
	if !pt.In(r.Inset(1)) {
		return -1, false
	}
	col := (pt.X - r.Min.X - 1) / swatchCell
	row := pt.Y - r.Min.Y - 1
	i := m.popover.Index(row, col)
	return i, i >= 0
}

// setFocus gives the keyboard focus to the well with the given index.
func (m *Model) setFocus(i int) {
	if m.focus == i {
		return
	}
	if m.focus >= 0 && m.focus < len(m.wells) {
		m.wells[m.focus].ClearFocus()
		m.invalidate(m.wells[m.focus])
	}
	m.focus = i
	if i >= 0 {
		m.invalidate(m.wells[i])
	}
}

// focusNext moves the keyboard focus to the next well that
// has a focusable segment.
func (m *Model) focusNext() bool {
	n := len(m.wells)
	for i := 1; i <= n; i++ {
		j := (m.focus + i) % n
		if j < 0 {
			j += n
		}
		if m.wells[j].FocusNext() {
			m.setFocus(j)
			m.invalidate(m.wells[j])
			return true
		}
	}
	m.setFocus(-1)
	m.status = "nothing to focus"
	return false
}

// keyEvent translates a bubbletea key message into a key event.
func keyEvent(msg tea.KeyMsg) *events.Key {
	var mods key.Modifiers
	mods.SetFlag(msg.Alt, key.Alt)
	text := ""
	switch msg.Type {
	case tea.KeySpace:
		text = " "
	case tea.KeyRunes:
		text = string(msg.Runes)
	}
	return events.NewKey(events.KeyDown, text, mods)
}
