// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color, a uint8) color.RGBA {
	r, g, b := cf.Clamped().RGB255()
	return color.RGBA{r, g, b, a}
}

// RotateHue returns the color with its HCL hue rotated by the given
// number of degrees, keeping chroma, luminance and alpha.
func RotateHue(c color.RGBA, deg float64) color.RGBA {
	h, ch, l := toColorful(c).Hcl()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hcl(h, ch, l), c.A)
}

// AddLightness returns the color with the given amount (-1 to 1)
// added to its HSL lightness, clamped to the valid range.
func AddLightness(c color.RGBA, amount float64) color.RGBA {
	h, s, l := toColorful(c).Hsl()
	l = math.Max(0, math.Min(1, l+amount))
	return fromColorful(colorful.Hsl(h, s, l), c.A)
}

// Highlight returns the color blended in Lab space toward its contrast
// color by the given fraction, which is how pressed and highlighted
// segments are tinted.
func Highlight(c color.RGBA, frac float64) color.RGBA {
	return fromColorful(toColorful(c).BlendLab(toColorful(Contrast(c)), frac), c.A)
}

// IsLight returns whether the color is light enough that dark
// content should be drawn on top of it.
func IsLight(c color.RGBA) bool {
	_, _, l := toColorful(c).Lab()
	return l > 0.6
}

// Contrast returns black or white, whichever contrasts more
// with the given color.
func Contrast(c color.RGBA) color.RGBA {
	if IsLight(c) {
		return Black
	}
	return White
}
