// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"image/color"

	"cogentcore.org/colorwell/mimedata"
)

// MimeType is the MIME type of a color dragged between color wells.
const MimeType = "application/x-color"

// ErrNoColor is returned by [FromMimes] when the data has no color.
var ErrNoColor = errors.New("colors: no color in mime data")

// ToMimes returns a snapshot of the given color as mime data, with both
// a [MimeType] and a text/plain hex representation.
func ToMimes(c color.RGBA) mimedata.Mimes {
	hex := AsHex(c)
	return mimedata.NewTextPlus(hex, MimeType, []byte(hex))
}

// FromMimes extracts a color from the given mime data. Only the
// [MimeType] representation is considered.
func FromMimes(md mimedata.Mimes) (color.RGBA, error) {
	data := md.TypeData(MimeType)
	if data == nil {
		return color.RGBA{}, ErrNoColor
	}
	return FromHex(string(data))
}
