// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"image"
	"strings"
	"testing"

	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/core"
	"cogentcore.org/colorwell/segment"
	"cogentcore.org/colorwell/settings"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, s *settings.Settings) *Model {
	t.Helper()
	SetProfile(termenv.Ascii)
	m := New(s, termenv.Ascii)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func drag(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func move(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func keys(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	m := newTestModel(t, nil)
	require.Len(t, m.Wells(), 3)
	for i, cw := range m.Wells() {
		assert.Equal(t, core.StyleExpanded, cw.Style())
		assert.Equal(t, colors.Spaced(i), cw.Color())
		assert.Len(t, cw.Swatches(), 16)
	}
	cw := m.Wells()[0]
	assert.Equal(t, image.Rect(2, 2, 14, 5), cw.Bounds())
	assert.Equal(t, image.Rect(2, 2, 11, 5), cw.Segments()[0].Bounds)
	assert.Equal(t, image.Rect(11, 2, 14, 5), cw.Segments()[1].Bounds)
	assert.Equal(t, image.Rect(16, 2, 28, 5), m.Wells()[1].Bounds())
}

func TestToggleOpensPanel(t *testing.T) {
	m := newTestModel(t, nil)
	cw := m.Wells()[0]

	send(m, press(12, 3), release(12, 3))
	assert.True(t, cw.IsActive())
	assert.True(t, m.Panel().IsVisible())
	assert.Equal(t, "panel "+colors.AsHex(cw.Color()), m.Status())
	assert.Regexp(t, "panel +"+colors.AsHex(cw.Color()), m.View())

	// activating another well takes the panel over
	send(m, press(26, 3), release(26, 3))
	assert.False(t, cw.IsActive())
	assert.True(t, m.Wells()[1].IsActive())

	send(m, press(26, 3), release(26, 3))
	assert.False(t, m.Panel().IsVisible())
}

func TestPopoverSelect(t *testing.T) {
	m := newTestModel(t, nil)
	cw := m.Wells()[0]

	send(m, press(5, 3), release(5, 3))
	p := m.Popover()
	require.NotNil(t, p)
	assert.Equal(t, image.Rect(2, 6, 28, 10), m.popoverRect())
	assert.Contains(t, m.View(), "[ ]")

	send(m, press(7, 7), release(7, 7))
	assert.Nil(t, m.Popover())
	assert.True(t, p.IsClosed())
	assert.Equal(t, colors.Spaced(1), cw.Color())
	assert.Equal(t, "well 1: "+colors.AsHex(colors.Spaced(1)), m.Status())

	// clicking elsewhere closes the popover without a change
	send(m, press(5, 3), release(5, 3))
	require.NotNil(t, m.Popover())
	send(m, press(60, 20), release(60, 20))
	assert.Nil(t, m.Popover())
	assert.Equal(t, colors.Spaced(1), cw.Color())
}

func TestPopoverKeys(t *testing.T) {
	m := newTestModel(t, nil)
	cw := m.Wells()[1]

	send(m, press(18, 3), release(18, 3))
	require.NotNil(t, m.Popover())
	send(m, keys("right"), keys("right"), keys("left"), keys("down"), keys("enter"))
	assert.Nil(t, m.Popover())
	assert.Equal(t, colors.Spaced(9), cw.Color())

	send(m, press(18, 3), release(18, 3), keys("esc"))
	assert.Nil(t, m.Popover())
}

func TestShiftClickOpensPanel(t *testing.T) {
	m := newTestModel(t, nil)
	msg := press(5, 3)
	msg.Shift = true
	send(m, msg, release(5, 3))
	assert.Nil(t, m.Popover())
	assert.True(t, m.Wells()[0].IsActive())
}

func TestDragColor(t *testing.T) {
	m := newTestModel(t, nil)
	src, dst := m.Wells()[0], m.Wells()[1]
	c := src.Color()

	send(m, press(5, 3), drag(7, 3))
	assert.False(t, m.Dragging())
	send(m, drag(9, 3))
	assert.True(t, m.Dragging())
	assert.Contains(t, m.Status(), "dragging "+colors.AsHex(c))

	send(m, drag(20, 3))
	assert.Equal(t, dst, m.drag.over)
	send(m, release(20, 3))
	assert.False(t, m.Dragging())
	assert.Equal(t, c, dst.Color())
	assert.Nil(t, m.Popover())
	assert.False(t, src.IsActive())
}

func TestDragCancelled(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.Wells()[1].Color()

	send(m, press(5, 3), drag(9, 3), drag(60, 20), release(60, 20))
	assert.False(t, m.Dragging())
	assert.Equal(t, "drag cancelled", m.Status())
	assert.Equal(t, before, m.Wells()[1].Color())
}

func TestKeyboard(t *testing.T) {
	m := newTestModel(t, nil)
	cw := m.Wells()[0]

	send(m, keys(" "))
	assert.False(t, cw.IsActive())

	send(m, keys("tab"))
	assert.Equal(t, 0, m.focus)
	assert.Equal(t, cw.Segments()[1], cw.Focused())

	send(m, keys(" "))
	assert.True(t, cw.IsActive())
	before := m.Panel().Color()
	send(m, keys("right"))
	assert.NotEqual(t, before, m.Panel().Color())
	assert.Equal(t, m.Panel().Color(), cw.Color())

	send(m, keys("esc"))
	assert.False(t, m.Panel().IsVisible())
	assert.False(t, cw.IsActive())

	send(m, keys("tab"), keys("tab"))
	assert.Equal(t, 2, m.focus)
	assert.Nil(t, cw.Focused())
	send(m, keys("tab"))
	assert.Equal(t, 0, m.focus)
}

func TestNothingToFocus(t *testing.T) {
	s := settings.Default()
	s.Style = "default"
	m := newTestModel(t, s)
	send(m, keys("tab"))
	assert.Equal(t, -1, m.focus)
	assert.Equal(t, "nothing to focus", m.Status())
}

func TestHover(t *testing.T) {
	s := settings.Default()
	s.Style = "minimal"
	m := newTestModel(t, s)
	sg := m.Wells()[0].Segments()[0]

	send(m, move(5, 3))
	assert.Equal(t, segment.Hover, sg.State())
	assert.Contains(t, m.View(), "▾")

	send(m, move(5, 10))
	assert.Equal(t, segment.Default, sg.State())
	assert.NotContains(t, m.View(), "▾")
}

func TestSecondaryAction(t *testing.T) {
	s := settings.Default()
	s.SecondaryAction = "openPanel"
	m := newTestModel(t, s)

	send(m, press(18, 3), release(18, 3))
	assert.Nil(t, m.Popover())
	assert.True(t, m.Wells()[1].IsActive())
	assert.True(t, m.Panel().IsVisible())
}

func TestSettingsMsg(t *testing.T) {
	m := newTestModel(t, nil)
	old := m.Wells()

	s := settings.Default()
	s.Wells = 2
	s.Style = "swatch"
	s.Color = "#112233"
	send(m, SettingsMsg{Settings: s})
	require.Len(t, m.Wells(), 2)
	for _, cw := range old {
		assert.True(t, cw.IsClosed())
	}
	for _, cw := range m.Wells() {
		assert.Equal(t, core.StyleSwatch, cw.Style())
		assert.Equal(t, "#112233", colors.AsHex(cw.Color()))
	}
	assert.Equal(t, "settings reloaded", m.Status())
	assert.Equal(t, 2, strings.Count(m.View(), "#112233"))
}

func TestViewUpdatesAfterChange(t *testing.T) {
	m := newTestModel(t, nil)
	v := m.View()
	assert.Contains(t, v, "color wells")
	for _, cw := range m.Wells() {
		assert.Contains(t, v, colors.AsHex(cw.Color()))
	}

	m.Wells()[2].SetColor(colors.White)
	assert.Contains(t, m.View(), "#ffffff")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestIgnoredMouse(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Nil(t, m.mouseEvent(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}))
	assert.Nil(t, m.mouseEvent(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}))
	assert.Nil(t, m.mouseEvent(release(5, 3)))
}
