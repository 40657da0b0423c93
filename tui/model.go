// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui runs color wells in a terminal with bubbletea. Terminal
// cells are the coordinate space: mouse messages are translated into
// [events] for the wells, and the wells are drawn with lipgloss.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/core"
	"cogentcore.org/colorwell/events"
	"cogentcore.org/colorwell/mimedata"
	"cogentcore.org/colorwell/segment"
	"cogentcore.org/colorwell/settings"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

const (
	// CellScale converts the point sizes of the wells into cells.
	CellScale = 0.15

	wellLeft   = 2
	wellTop    = 2
	wellHeight = 3
	wellGap    = 2
	popoverTop = wellTop + wellHeight + 1
	swatchCell = 3
)

// wellWidths are the widths of the wells in cells for each control size.
var wellWidths = [segment.ControlSizeN]int{9, 10, 12, 14}

// SettingsMsg carries reloaded settings into the program.
type SettingsMsg struct {
	Settings *settings.Settings
}

// Model is the bubbletea model for a row of color wells sharing one panel.
type Model struct {
	settings *settings.Settings
	profile  termenv.Profile

	panel *core.Panel
	wells []*core.ColorWell

	// cache holds the rendered blocks of wells that have not
	// requested a redraw since they were last rendered.
	cache map[*core.ColorWell]string

	popover   *core.Popover
	popCursor int

	drag *dragSession

	// pressed is the well that received the current press.
	pressed   *core.ColorWell
	hovered   *core.ColorWell
	focus     int
	lastMouse image.Point

	help          help.Model
	width, height int
	status        string
}

// dragSession is a color being dragged from one well.
type dragSession struct {
	source *core.ColorWell
	data   mimedata.Mimes
	pos    image.Point

	// over is the well under the pointer that accepts the data.
	over *core.ColorWell
}

// New returns a new model for the given settings,
// drawing with the given color profile.
func New(s *settings.Settings, profile termenv.Profile) *Model {
	if s == nil {
		s = settings.Default()
	}
	m := &Model{
		profile: profile,
		panel:   core.NewPanel(),
		cache:   map[*core.ColorWell]string{},
		focus:   -1,
		help:    help.New(),
	}
	m.panel.OnUpdate = func(p *core.Panel) { m.status = m.panelStatus() }
	m.apply(s)
	return m
}

// Wells returns the color wells of the model.
func (m *Model) Wells() []*core.ColorWell { return m.wells }

// Panel returns the shared color panel.
func (m *Model) Panel() *core.Panel { return m.panel }

// Popover returns the open popover, if any.
func (m *Model) Popover() *core.Popover { return m.popover }

// Status returns the current status line.
func (m *Model) Status() string { return m.status }

// Dragging returns whether a color drag is in progress.
func (m *Model) Dragging() bool { return m.drag != nil }

// apply configures the wells from the given settings, replacing them
// if their number changed.
func (m *Model) apply(s *settings.Settings) {
	m.settings = s
	if len(m.wells) != s.Wells {
		for _, cw := range m.wells {
			cw.Close()
		}
		m.wells = nil
		m.pressed, m.hovered, m.drag, m.focus = nil, nil, nil, -1
		for i := range s.Wells {
			m.wells = append(m.wells, m.newWell(i).SetColor(colors.Spaced(i)))
		}
	}
	for _, cw := range m.wells {
		if err := s.Apply(cw); err != nil {
			slog.Error("tui: applying settings", "err", err)
		}
		if s.SecondaryAction != "" {
			cw.SetSecondaryAction(s.SecondaryAction, m)
		} else {
			cw.SetSecondaryAction("", nil)
		}
		cw.SetScale(s.Scale * CellScale)
	}
	m.layout()
}

func (m *Model) newWell(i int) *core.ColorWell {
	cw := core.NewColorWell(m.panel).
		SetPopoverPresenter(m).
		SetDragSource(m).
		SetDelegate(m)
	cw.SetRenderHook(func(sg *segment.Segment) {
		delete(m.cache, cw)
	})
	cw.OnChange(func(e events.Event) {
		if cc, ok := e.(*events.ColorChange); ok {
			m.status = fmt.Sprintf("well %d: %s", i+1, colors.AsHex(cc.New))
		}
	})
	return cw
}

// layout places the wells in a row.
func (m *Model) layout() {
	x := wellLeft
	for _, cw := range m.wells {
		w := m.wellWidth(cw)
		cw.SetBounds(image.Rect(x, wellTop, x+w, wellTop+wellHeight))
		x += w + wellGap
	}
	clear(m.cache)
}

func (m *Model) wellWidth(cw *core.ColorWell) int {
	w := wellWidths[segment.Regular]
	if size := cw.ControlSize(); size >= 0 && size < segment.ControlSizeN {
		w = wellWidths[size]
	}
	if cw.Style() == core.StyleExpanded {
		toggle := int(segment.ToggleWidth*cw.Scale() + 0.5)
		w = max(w, toggle+6)
	}
	return w
}

// wellAt returns the well under the given cell, or nil.
func (m *Model) wellAt(pt image.Point) *core.ColorWell {
	for _, cw := range m.wells {
		if pt.In(cw.Bounds()) {
			return cw
		}
	}
	return nil
}

func (m *Model) wellIndex(cw *core.ColorWell) int {
	for i, w := range m.wells {
		if w == cw {
			return i
		}
	}
	return -1
}

func (m *Model) invalidate(cw *core.ColorWell) {
	if cw != nil {
		delete(m.cache, cw)
	}
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case SettingsMsg:
		if msg.Settings != nil {
			m.apply(msg.Settings)
			m.status = "settings reloaded"
		}
	}
	return m, nil
}

// PresentPopover implements [core.PopoverPresenter].
func (m *Model) PresentPopover(p *core.Popover) {
	m.popover = p
	m.popCursor = 0
}

// DismissPopover implements [core.PopoverPresenter].
func (m *Model) DismissPopover(p *core.Popover) {
	if m.popover == p {
		m.popover = nil
	}
}

// StartColorDrag implements [core.DragSource].
func (m *Model) StartColorDrag(cw *core.ColorWell, sg *segment.Segment, md mimedata.Mimes) {
	m.drag = &dragSession{source: cw, data: md, pos: m.lastMouse}
	m.status = "dragging " + md.Text(mimedata.TextPlain)
}

// ColorWellDidChange implements [core.Delegate].
func (m *Model) ColorWellDidChange(cw *core.ColorWell, old color.RGBA) {
	slog.Info("color changed", "well", m.wellIndex(cw)+1, "old", colors.AsHex(old), "new", colors.AsHex(cw.Color()))
}

// HandleAction implements [segment.ActionTarget] for the secondary
// action of the wells, which opens the panel for the sending well.
func (m *Model) HandleAction(action string, sender any) bool {
	cw, ok := sender.(*core.ColorWell)
	if !ok {
		return false
	}
	m.status = fmt.Sprintf("%s: well %d", action, m.wellIndex(cw)+1)
	cw.Activate(true)
	return true
}

func (m *Model) panelStatus() string {
	if !m.panel.IsVisible() {
		return "panel closed"
	}
	return "panel " + colors.AsHex(m.panel.Color())
}
