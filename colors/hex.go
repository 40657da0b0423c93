// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color conversions used by color wells:
// hex encoding, the drag-and-drop color payload, and the lightness,
// hue and contrast adjustments used by renderers.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}

	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// AsHex returns the given color as a hex string of the form
// #rrggbbaa, or #rrggbb if the color is fully opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromHex parses the given hex color string. It accepts the
// #rgb, #rrggbb and #rrggbbaa forms, with or without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	alpha := uint8(255)
	switch len(h) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		h = h[:6]
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	cf, err := colorful.Hex("#" + h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, alpha}, nil
}

// IsHex returns whether the given string is a valid hex color.
func IsHex(hex string) bool {
	_, err := FromHex(hex)
	return err == nil
}
