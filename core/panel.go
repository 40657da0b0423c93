// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/colorwell/segment"
)

// Panel is the color panel shared by all the color wells of an
// application. Active wells are attached to it; the panel is visible
// while at least one well is attached, and color changes made in the
// panel are pushed into every attached well.
type Panel struct {
	wells   []*ColorWell
	color   color.RGBA
	visible bool

	// OnUpdate is called whenever the attached wells, visibility,
	// or color of the panel change.
	OnUpdate func(p *Panel)
}

// NewPanel returns a new hidden panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Color returns the current color of the panel.
func (p *Panel) Color() color.RGBA {
	return p.color
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Wells returns the wells currently attached to the panel.
func (p *Panel) Wells() []*ColorWell {
	return p.wells
}

// IsAttached returns whether the given well is attached.
func (p *Panel) IsAttached(cw *ColorWell) bool {
	return slices.Contains(p.wells, cw)
}

// Attach attaches the given well to the panel and shows the panel
// with the color of the well. If exclusive, all other wells are
// detached first.
func (p *Panel) Attach(cw *ColorWell, exclusive bool) {
	if exclusive {
		for _, w := range slices.Clone(p.wells) {
			if w != cw {
				p.Detach(w)
			}
		}
	}
	if !p.IsAttached(cw) {
		p.wells = append(p.wells, cw)
	}
	p.visible = true
	p.color = cw.color
	slog.Debug("panel: attached well", "wells", len(p.wells), "exclusive", exclusive)
	p.update()
}

// Detach detaches the given well from the panel, hiding the panel
// when the last well leaves.
func (p *Panel) Detach(cw *ColorWell) {
	i := slices.Index(p.wells, cw)
	if i < 0 {
		return
	}
	p.wells = slices.Delete(p.wells, i, i+1)
	if len(p.wells) == 0 {
		p.visible = false
	}
	cw.panelDetached()
	p.update()
}

// SetColor sets the color of the panel and pushes it into every
// attached well with all change notifications.
func (p *Panel) SetColor(c color.RGBA) {
	p.color = c
	for _, w := range slices.Clone(p.wells) {
		w.SetColorWithOptions(c, segment.AllChanges)
	}
	p.update()
}

// wellChanged is called by an attached well whose color changed.
// Other attached wells follow the new color.
func (p *Panel) wellChanged(cw *ColorWell, c color.RGBA) {
	if p.color == c {
		return
	}
	p.color = c
	for _, w := range slices.Clone(p.wells) {
		if w != cw {
			w.SetColorWithOptions(c, segment.AllChanges)
		}
	}
	p.update()
}

// Close detaches every well and hides the panel.
func (p *Panel) Close() {
	for _, w := range slices.Clone(p.wells) {
		p.Detach(w)
	}
	p.visible = false
	p.update()
}

func (p *Panel) update() {
	if p.OnUpdate != nil {
		p.OnUpdate(p)
	}
}
