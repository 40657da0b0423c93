// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"image/color"
	"strings"

	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/core"
	"cogentcore.org/colorwell/segment"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const mouseHelp = "click: use well · drag: move color · shift+click: panel"

// View implements [tea.Model].
func (m *Model) View() string {
	lines := []string{titleStyle.Render("color wells"), ""}

	row := []string{strings.Repeat(" ", wellLeft)}
	for i, cw := range m.wells {
		if i > 0 {
			row = append(row, strings.Repeat(" ", wellGap))
		}
		row = append(row, m.renderWell(cw))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...), "")

	if m.popover != nil {
		indent := strings.Repeat(" ", m.popover.Well.Bounds().Min.X)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, indent, m.renderPopover()))
	}
	if m.panel.IsVisible() {
		lines = append(lines, m.renderPanel())
	}
	lines = append(lines, statusStyle.Render(m.status), helpStyle.Render(mouseHelp), m.help.View(bindings))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderWell returns the block for the given well, from the
// cache unless the well has requested a redraw.
func (m *Model) renderWell(cw *core.ColorWell) string {
	if s, ok := m.cache[cw]; ok {
		return s
	}
	focused := m.focus >= 0 && m.focus < len(m.wells) && m.wells[m.focus] == cw
	drop := m.drag != nil && m.drag.over == cw
	var blocks []string
	for _, sg := range cw.Segments() {
		blocks = append(blocks, m.renderSegment(cw, sg, focused && cw.Focused() == sg, drop))
	}
	s := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	m.cache[cw] = s
	return s
}

func (m *Model) renderSegment(cw *core.ColorWell, sg *segment.Segment, focused, drop bool) string {
	border := lipgloss.RoundedBorder()
	top, right, bottom, left := true, true, true, true
	switch sg.Edge() {
	case segment.Leading:
		right = false
	case segment.Trailing:
		left = false
	}
	switch {
	case sg.Kind() == segment.Swatch:
		border = lipgloss.HiddenBorder()
	case sg.Kind() == segment.BorderedSwatch && sg.State() == segment.Pressed:
		border = lipgloss.DoubleBorder()
	}
	width := sg.Bounds.Dx()
	if left {
		width--
	}
	if right {
		width--
	}
	if width <= 0 {
		return ""
	}

	st := lipgloss.NewStyle().
		Border(border, top, right, bottom, left).
		BorderForeground(segmentBorderColor(sg, focused, drop)).
		Width(width).
		Height(max(sg.Bounds.Dy()-2, 1)).
		Align(lipgloss.Center)
	if !cw.IsEnabled() {
		st = st.Faint(true)
	}

	text := ""
	if sg.Kind() == segment.Toggle {
		text = toggleIcon(cw.ControlSize())
		if sg.State() == segment.Pressed {
			st = st.Reverse(true)
		}
	} else {
		c := opaque(cw.Color())
		if sg.State() == segment.Highlight {
			c = colors.Highlight(c, 0.2)
		}
		st = st.Background(lipgloss.Color(colors.AsHex(c))).
			Foreground(lipgloss.Color(colors.AsHex(colors.Contrast(c))))
		if m.profile == termenv.Ascii {
			text = colors.AsHex(c)
		}
		if sg.ShowsCaret() {
			text += "▾"
		}
	}
	return st.Render(truncate(text, width))
}

func segmentBorderColor(sg *segment.Segment, focused, drop bool) lipgloss.Color {
	switch {
	case drop:
		return dropColor
	case focused:
		return focusColor
	case sg.State() == segment.Highlight:
		return highlightColor
	case sg.State() == segment.Hover:
		return hoverColor
	}
	return borderColor
}

// toggleIcon returns the toggle glyph closest to the icon size
// for the control size.
func toggleIcon(size segment.ControlSize) string {
	switch px := segment.ToggleIconSize(size); {
	case px < 10:
		return "·"
	case px < 12:
		return "•"
	case px < 13:
		return "●"
	}
	return "◉"
}

func (m *Model) renderPopover() string {
	p := m.popover
	ascii := m.profile == termenv.Ascii
	rows := make([]string, p.Rows())
	for r := range rows {
		cells := make([]string, p.Columns)
		for c := range cells {
			i := p.Index(r, c)
			if i < 0 {
				cells[c] = strings.Repeat(" ", swatchCell)
				continue
			}
			text := "   "
			switch {
			case i == m.popCursor:
				text = "[ ]"
			case ascii:
				text = " o "
			}
			sc := opaque(p.Swatches[i])
			cells[c] = lipgloss.NewStyle().
				Background(lipgloss.Color(colors.AsHex(sc))).
				Foreground(lipgloss.Color(colors.AsHex(colors.Contrast(sc)))).
				Render(text)
		}
		rows[r] = strings.Join(cells, "")
	}
	return popoverStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderPanel() string {
	c := opaque(m.panel.Color())
	sw := lipgloss.NewStyle().Background(lipgloss.Color(colors.AsHex(c))).Render("      ")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"panel ", sw, " ", colors.AsHex(c),
		helpStyle.Render("  ←/→ hue · ↑/↓ lightness"))
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
