// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/colorwell/segment"

// Styles are the visual styles of a [ColorWell], each of which
// determines the segments that the well is composed of.
type Styles int32

const (
	// StyleSwatch is a plain swatch that only supports dragging
	// and dropping colors.
	StyleSwatch Styles = iota

	// StyleDefault is a bordered swatch that shows and hides
	// the color panel when clicked.
	StyleDefault

	// StyleMinimal is a swatch that shows the swatch popover
	// when clicked, with a caret while hovered.
	StyleMinimal

	// StyleExpanded is a pull-down swatch next to a toggle
	// for the color panel.
	StyleExpanded

	StylesN
)

var styleNames = [...]string{"swatch", "default", "minimal", "expanded"}

func (st Styles) String() string {
	if st < 0 || st >= StylesN {
		return "default"
	}
	return styleNames[st]
}

// ParseStyle returns the style with the given name,
// and false if there is none.
func ParseStyle(s string) (Styles, bool) {
	for i, nm := range styleNames {
		if nm == s {
			return Styles(i), true
		}
	}
	return StyleDefault, false
}

// Kinds returns the kinds of segments for the style, in
// leading to trailing order.
func (st Styles) Kinds() []segment.Kinds {
	switch st {
	case StyleSwatch:
		return []segment.Kinds{segment.Swatch}
	case StyleMinimal:
		return []segment.Kinds{segment.SinglePullDownSwatch}
	case StyleExpanded:
		return []segment.Kinds{segment.PartialPullDownSwatch, segment.Toggle}
	}
	return []segment.Kinds{segment.BorderedSwatch}
}
