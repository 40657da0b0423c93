// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of the color well
// demo: how the wells look, which swatches they offer, and how
// the program logs. Settings are stored in TOML or YAML files.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/colorwell/colors"
	"cogentcore.org/colorwell/core"
	"cogentcore.org/colorwell/segment"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for settings files whose
// extension is not one of the known formats.
var ErrUnsupportedFormat = errors.New("settings: unsupported file format")

// Settings are the user settings for a set of color wells.
type Settings struct {

	// Style is the style of the wells: swatch, default, minimal, or expanded.
	Style string `toml:"style" yaml:"style" validate:"oneof=swatch default minimal expanded"`

	// ControlSize is the size preset of the wells: mini, small, regular, or large.
	ControlSize string `toml:"control_size" yaml:"control_size" validate:"oneof=mini small regular large"`

	// DragThreshold is the distance in cells the pointer has to move
	// on a swatch before a color drag starts.
	DragThreshold float32 `toml:"drag_threshold" yaml:"drag_threshold" validate:"gte=0,lte=100"`

	// Scale is the display scale applied to segment widths.
	Scale float32 `toml:"scale" yaml:"scale" validate:"gt=0,lte=8"`

	// Swatches are the hex colors offered in the popover.
	Swatches []string `toml:"swatches" yaml:"swatches" validate:"dive,colorhex"`

	// PopoverColumns is the number of swatches in each popover row.
	PopoverColumns int `toml:"popover_columns" yaml:"popover_columns" validate:"gte=1,lte=32"`

	// Wells is the number of wells to show.
	Wells int `toml:"wells" yaml:"wells" validate:"gte=1,lte=16"`

	// Color is the initial hex color of the wells. If it is empty,
	// each well starts with a different color.
	Color string `toml:"color" yaml:"color" validate:"omitempty,colorhex"`

	// SecondaryAction is the name of an action that pull-down swatches
	// send instead of showing the popover. It is off when empty.
	SecondaryAction string `toml:"secondary_action" yaml:"secondary_action"`

	// LogLevel is the minimum level of log messages.
	LogLevel string `toml:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// defaults are the default settings, copied by [Default].
var defaults = Settings{
	Style:          "expanded",
	ControlSize:    "regular",
	DragThreshold:  segment.DefaultDragThreshold,
	Scale:          1,
	Swatches:       hexes(colors.SpacedPalette(16)),
	PopoverColumns: core.DefaultPopoverColumns,
	Wells:          3,
	LogLevel:       "info",
}

// Default returns a new copy of the default settings.
func Default() *Settings {
	return defaults.Clone()
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := &Settings{}
	if err := copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("settings: clone", "err", err)
	}
	return c
}

// Validate checks the settings and returns an error describing
// every invalid field.
func (s *Settings) Validate() error {
	return validatorInstance().Struct(s)
}

// Level returns the log level of the settings.
func (s *Settings) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SwatchColors returns the parsed swatch colors, skipping invalid ones.
func (s *Settings) SwatchColors() []color.RGBA {
	cs := make([]color.RGBA, 0, len(s.Swatches))
	for _, h := range s.Swatches {
		c, err := colors.FromHex(h)
		if err != nil {
			slog.Warn("settings: skipping invalid swatch", "swatch", h, "err", err)
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

// Apply configures the given color well from the settings.
func (s *Settings) Apply(cw *core.ColorWell) error {
	st, ok := core.ParseStyle(s.Style)
	if !ok {
		return fmt.Errorf("settings: unknown style %q", s.Style)
	}
	size, ok := segment.ParseControlSize(s.ControlSize)
	if !ok {
		return fmt.Errorf("settings: unknown control size %q", s.ControlSize)
	}
	cw.SetStyle(st).
		SetControlSize(size).
		SetDragThreshold(s.DragThreshold).
		SetScale(s.Scale).
		SetPopoverColumns(s.PopoverColumns).
		SetSwatches(s.SwatchColors()...)
	if s.Color != "" {
		c, err := colors.FromHex(s.Color)
		if err != nil {
			return fmt.Errorf("settings: invalid color: %w", err)
		}
		cw.SetColor(c)
	}
	return nil
}

// Decoder is implemented by the decoders of the supported formats.
type Decoder interface {
	Decode(v any) error
}

// Encoder is implemented by the encoders of the supported formats.
type Encoder interface {
	Encode(v any) error
}

type format struct {
	decoder func(r io.Reader) Decoder
	encoder func(w io.Writer) Encoder
}

var formats = map[string]format{
	".toml": {
		decoder: func(r io.Reader) Decoder { return toml.NewDecoder(r) },
		encoder: func(w io.Writer) Encoder { return toml.NewEncoder(w) },
	},
	".yaml": {
		decoder: func(r io.Reader) Decoder { return yaml.NewDecoder(r) },
		encoder: func(w io.Writer) Encoder { return yaml.NewEncoder(w) },
	},
}

func formatFor(filename string) (format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".yml" {
		ext = ".yaml"
	}
	f, ok := formats[ext]
	if !ok {
		return format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	return f, nil
}

// Open reads settings from the given file on top of the current values
// of s. The format is determined by the file extension.
func (s *Settings) Open(filename string) error {
	f, err := formatFor(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return s.Read(bufio.NewReader(fp), f.decoder)
}

// Read reads settings from the given reader using the given decoder.
func (s *Settings) Read(r io.Reader, decoder func(r io.Reader) Decoder) error {
	err := decoder(r).Decode(s)
	if errors.Is(err, io.EOF) {
		return nil // empty file
	}
	return err
}

// Save writes the settings to the given file. The format is
// determined by the file extension.
func (s *Settings) Save(filename string) error {
	f, err := formatFor(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	enc := f.encoder(bw)
	if err := enc.Encode(s); err != nil {
		return err
	}
	if c, ok := enc.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load returns the default settings updated from the given file and
// validated. It is okay for the file not to exist, in which case the
// defaults are returned.
func Load(filename string) (*Settings, error) {
	s := Default()
	if filename == "" {
		return s, nil
	}
	err := s.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("settings: no settings file, using defaults", "file", filename)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: reading %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: invalid %s: %w", filename, err)
	}
	return s, nil
}

func hexes(cs []color.RGBA) []string {
	hs := make([]string, len(cs))
	for i, c := range cs {
		hs[i] = colors.AsHex(c)
	}
	return hs
}
