// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"image"
	"testing"

	"cogentcore.org/colorwell/events"
	"github.com/stretchr/testify/assert"
)

func TestClickPerformsOneAction(t *testing.T) {
	for _, kind := range []Kinds{BorderedSwatch, SinglePullDownSwatch, PartialPullDownSwatch, Toggle} {
		o := newTestOwner()
		sg := newTestSegment(kind, o)

		mouseDown(sg, image.Pt(5, 5), 0)
		assert.Equal(t, Highlight, sg.State(), kind.String())
		assert.Equal(t, 0, o.actions(), kind.String())

		mouseUp(sg, image.Pt(10, 10))
		assert.Equal(t, 1, o.actions(), kind.String())
	}
}

func TestReleaseOutsideCancels(t *testing.T) {
	for _, kind := range []Kinds{Swatch, BorderedSwatch, SinglePullDownSwatch, PartialPullDownSwatch, Toggle} {
		o := newTestOwner()
		sg := newTestSegment(kind, o)

		mouseDown(sg, image.Pt(5, 5), 0)
		mouseUp(sg, image.Pt(50, 5))
		assert.Equal(t, 0, o.actions(), kind.String())
		assert.Equal(t, Default, sg.State(), kind.String())
	}
}

func TestDisabledSegmentIgnoresEvents(t *testing.T) {
	for kind := Swatch; kind < KindsN; kind++ {
		o := newTestOwner()
		o.swatches = colorsN(3)
		sg := newTestSegment(kind, o)
		o.enabled = false
		renders := o.renders

		e := mouseDown(sg, image.Pt(5, 5), 0)
		assert.Equal(t, Default, sg.State(), kind.String())
		assert.False(t, e.IsHandled())

		mouseDrag(sg, image.Pt(5, 5), image.Pt(15, 15))
		mouseUp(sg, image.Pt(15, 15))
		sg.HandleEvent(events.NewMouse(events.MouseEnter, events.NoButton, image.Pt(1, 1), 0))

		ke := events.NewKey(events.KeyDown, " ", 0)
		sg.HandleEvent(ke)
		assert.False(t, ke.IsHandled())
		assert.False(t, sg.AccessibilityPerformPress())

		assert.Equal(t, Default, sg.State(), kind.String())
		assert.Equal(t, 0, o.actions(), kind.String())
		assert.Empty(t, o.drags)
		assert.Equal(t, renders, o.renders)
	}
}

func TestValidateAndPerformAction(t *testing.T) {
	o := newTestOwner()
	sg := newTestSegment(Toggle, o)

	assert.False(t, sg.ValidateAndPerformAction(events.NewKey(events.KeyDown, "a", 0)))
	assert.False(t, sg.ValidateAndPerformAction(events.NewKey(events.KeyDown, "  ", 0)))
	assert.False(t, sg.ValidateAndPerformAction(events.NewKey(events.KeyUp, " ", 0)))
	assert.False(t, sg.ValidateAndPerformAction(events.NewMouse(events.KeyDown, events.NoButton, image.Pt(0, 0), 0)))
	assert.Equal(t, 0, o.actions())

	assert.True(t, sg.ValidateAndPerformAction(events.NewKey(events.KeyDown, " ", 0)))
	assert.Equal(t, 1, o.activations)

	ke := events.NewKey(events.KeyDown, "a", 0)
	sg.HandleEvent(ke)
	assert.False(t, ke.IsHandled())

	ke = events.NewKey(events.KeyDown, " ", 0)
	sg.HandleEvent(ke)
	assert.True(t, ke.IsHandled())
	assert.Equal(t, 1, o.deactivations)
}

func TestStateRemembersPrevious(t *testing.T) {
	o := newTestOwner()
	sg := newTestSegment(Swatch, o)
	sg.SetState(Hover)
	sg.SetState(Highlight)
	assert.Equal(t, Highlight, sg.State())
	assert.Equal(t, Hover, sg.PrevState())
	sg.SetState(Highlight)
	assert.Equal(t, Highlight, sg.PrevState())
}

func TestNeedsRenderPredicates(t *testing.T) {
	assert.False(t, Swatch.NeedsRender(Highlight))
	assert.False(t, Swatch.NeedsRender(Pressed))

	for _, s := range []State{Default, Highlight, Pressed} {
		assert.True(t, Toggle.NeedsRender(s))
		assert.True(t, BorderedSwatch.NeedsRender(s))
	}
	assert.False(t, Toggle.NeedsRender(Hover))
	assert.False(t, BorderedSwatch.NeedsRender(Hover))

	for s := Default; s < StateN; s++ {
		assert.True(t, SinglePullDownSwatch.NeedsRender(s))
		assert.True(t, PartialPullDownSwatch.NeedsRender(s))
	}
}

func TestSetStateRequestsRender(t *testing.T) {
	o := newTestOwner()
	sw := newTestSegment(Swatch, o)
	tg := newTestSegment(Toggle, o)
	o.renders = 0

	sw.SetState(Highlight)
	assert.Equal(t, 0, o.renders)

	tg.SetState(Hover)
	assert.Equal(t, 0, o.renders)
	tg.SetState(Highlight)
	assert.Equal(t, 1, o.renders)
}

func TestMissingOwner(t *testing.T) {
	o := newTestOwner()
	o.active = true
	o.swatches = colorsN(2)
	for kind := Swatch; kind < KindsN; kind++ {
		sg := New(kind, func() Owner { return nil })
		assert.Nil(t, sg.Owner())
		assert.False(t, sg.IsActive())
		assert.False(t, sg.IsEnabled())
		assert.False(t, sg.CanPerformAction())
		assert.False(t, sg.PerformAction())
		assert.False(t, sg.AcceptsFocus())
		assert.Nil(t, sg.AccessibilityParent())

		sg = newTestSegment(kind, o)
		assert.True(t, sg.IsActive())
		sg.Detach()
		assert.Nil(t, sg.Owner())
		assert.False(t, sg.IsActive())
		assert.False(t, Toggle.PerformAction(sg))
	}
}

func TestFocus(t *testing.T) {
	o := newTestOwner()
	assert.True(t, newTestSegment(Toggle, o).AcceptsFocus())
	for _, kind := range []Kinds{Swatch, BorderedSwatch, SinglePullDownSwatch, PartialPullDownSwatch} {
		assert.False(t, newTestSegment(kind, o).AcceptsFocus(), kind.String())
	}
	o.enabled = false
	assert.False(t, newTestSegment(Toggle, o).AcceptsFocus())
}

func TestAccessibility(t *testing.T) {
	o := newTestOwner()
	sw := newTestSegment(Swatch, o)
	assert.Equal(t, RoleButton, sw.AccessibilityRole())
	assert.False(t, sw.IsAccessibilityElement())
	assert.False(t, sw.AccessibilityPerformPress())

	tg := newTestSegment(Toggle, o)
	assert.True(t, tg.IsAccessibilityElement())
	assert.Equal(t, "color picker", tg.AccessibilityLabel())
	assert.Equal(t, Owner(o), tg.AccessibilityParent())
	assert.True(t, tg.AccessibilityPerformPress())
	assert.Equal(t, 1, o.activations)

	bs := newTestSegment(BorderedSwatch, o)
	assert.True(t, bs.IsAccessibilityElement())
	assert.True(t, bs.AccessibilityPerformPress())
	assert.Equal(t, 1, o.deactivations)
}

func TestEdges(t *testing.T) {
	assert.Equal(t, EdgeNone, Swatch.Edge())
	assert.Equal(t, EdgeNone, BorderedSwatch.Edge())
	assert.Equal(t, EdgeNone, SinglePullDownSwatch.Edge())
	assert.Equal(t, Leading, PartialPullDownSwatch.Edge())
	assert.Equal(t, Trailing, Toggle.Edge())

	o := newTestOwner()
	assert.Equal(t, Trailing, newTestSegment(Toggle, o).Edge())
}

func TestNewInvalidKind(t *testing.T) {
	assert.Panics(t, func() { New(KindsN, nil) })
}
