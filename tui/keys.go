// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"cogentcore.org/colorwell/colors"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	hueStep       = 15
	lightnessStep = 0.05
)

type keyMap struct {
	quit  key.Binding
	focus key.Binding
	press key.Binding
	close key.Binding
	pick  key.Binding
	left  key.Binding
	right key.Binding
	up    key.Binding
	down  key.Binding
}

var bindings = keyMap{
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	press: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),
	close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	pick:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
	left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "hue")),
	right: key.NewBinding(key.WithKeys("right", "l")),
	up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "lightness")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
}

// ShortHelp implements [help.KeyMap].
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focus, k.press, k.left, k.up, k.close, k.quit}
}

// FullHelp implements [help.KeyMap].
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.pick}}
}

// handleKey handles a key message, returning the quit command
// when the program should exit.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, bindings.quit):
		return tea.Quit
	case key.Matches(msg, bindings.focus):
		m.focusNext()
		return nil
	case key.Matches(msg, bindings.close):
		switch {
		case m.popover != nil:
			m.popover.Close()
		case m.panel.IsVisible():
			m.panel.Close()
		default:
			m.setFocus(-1)
		}
		return nil
	}
	if m.popover != nil {
		m.popoverKey(msg)
		return nil
	}
	if m.panel.IsVisible() && m.panelKey(msg) {
		return nil
	}
	if m.focus >= 0 && m.focus < len(m.wells) {
		m.wells[m.focus].HandleEvent(keyEvent(msg))
	}
	return nil
}

// popoverKey moves the popover cursor and selects with enter or space.
func (m *Model) popoverKey(msg tea.KeyMsg) {
	p := m.popover
	n := len(p.Swatches)
	switch {
	case key.Matches(msg, bindings.left):
		m.popCursor = max(m.popCursor-1, 0)
	case key.Matches(msg, bindings.right):
		m.popCursor = min(m.popCursor+1, n-1)
	case key.Matches(msg, bindings.up):
		if m.popCursor-p.Columns >= 0 {
			m.popCursor -= p.Columns
		}
	case key.Matches(msg, bindings.down):
		if m.popCursor+p.Columns < n {
			m.popCursor += p.Columns
		}
	case key.Matches(msg, bindings.pick):
		p.Select(m.popCursor)
	}
}

// panelKey edits the panel color, returning whether the key was used.
func (m *Model) panelKey(msg tea.KeyMsg) bool {
	c := m.panel.Color()
	switch {
	case key.Matches(msg, bindings.left):
		c = colors.RotateHue(c, -hueStep)
	case key.Matches(msg, bindings.right):
		c = colors.RotateHue(c, hueStep)
	case key.Matches(msg, bindings.up):
		c = colors.AddLightness(c, lightnessStep)
	case key.Matches(msg, bindings.down):
		c = colors.AddLightness(c, -lightnessStep)
	default:
		return false
	}
	m.panel.SetColor(c)
	return true
}
