// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/colorwell/mimedata"
	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)
	assert.Equal(t, "#ff8000", AsHex(c))

	c, err = FromHex("00ff0080")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 128}, c)
	assert.Equal(t, "#00ff0080", AsHex(c))

	c, err = FromHex("#fff")
	assert.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = FromHex("#12345")
	assert.Error(t, err)
	assert.False(t, IsHex("blue"))
	assert.True(t, IsHex("#0000ff"))
}

func TestMimes(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	md := ToMimes(red)
	assert.True(t, md.HasType(MimeType))
	assert.Equal(t, "#ff0000", md.Text(mimedata.TextPlain))

	c, err := FromMimes(md)
	assert.NoError(t, err)
	assert.Equal(t, red, c)

	_, err = FromMimes(mimedata.NewText("#ff0000"))
	assert.ErrorIs(t, err, ErrNoColor)

	_, err = FromMimes(mimedata.NewMime(MimeType, []byte("not a color")))
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, Black, Contrast(White))
	assert.Equal(t, White, Contrast(Black))
	assert.True(t, IsLight(color.RGBA{255, 255, 0, 255}))
}

func TestAdjust(t *testing.T) {
	c := color.RGBA{200, 40, 40, 128}
	assert.Equal(t, uint8(128), RotateHue(c, 90).A)
	assert.NotEqual(t, c, RotateHue(c, 90))
	assert.Equal(t, White, AddLightness(color.RGBA{120, 120, 120, 255}, 1))
	assert.Equal(t, Black, AddLightness(color.RGBA{120, 120, 120, 255}, -1))
	assert.NotEqual(t, c, Highlight(c, 0.2))
}

func TestSpacedPalette(t *testing.T) {
	p := SpacedPalette(10)
	assert.Len(t, p, 10)
	assert.Equal(t, Spaced(3), p[3])
	assert.NotEqual(t, p[0], p[1])
	for _, c := range p {
		assert.Equal(t, uint8(255), c.A)
	}
}
