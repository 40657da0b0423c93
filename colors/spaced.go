// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// It is used to fill the default swatch palette of the popover.
func Spaced(idx int) color.RGBA {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	lums := []float64{0.55, 0.7, 0.4, 0.85}
	chromas := []float64{0.6, 0.5, 0.5, 0.3}
	ncats := len(hues)
	nl := len(lums)
	hi := idx % ncats
	li := (idx / ncats) % nl
	return fromColorful(colorful.Hcl(hues[hi], chromas[li], lums[li]), 255)
}

// SpacedPalette returns the first n colors of [Spaced].
func SpacedPalette(n int) []color.RGBA {
	p := make([]color.RGBA, n)
	for i := range p {
		p[i] = Spaced(i)
	}
	return p
}
