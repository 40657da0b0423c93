// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mimedata defines the MIME data carried by drag-and-drop
// sessions between color wells. [Data] contains a type string and
// bytes, and multiple representations of the same value are collected
// in [Mimes], which is just a []*Data slice.
package mimedata

import (
	"fmt"
	"strings"
)

const (
	// TextPlain is the MIME type for plain text.
	TextPlain = "text/plain"

	// DataJSON is the MIME type for JSON data.
	DataJSON = "application/json"
)

// Data represents one element of MIME data as a type string and byte slice.
type Data struct {
	// Type is the MIME type string representing the data, e.g., text/plain.
	Type string

	// Data is the data for the item.
	Data []byte
}

// NewTextData returns a Data representation of the string. It is a good
// idea to always have a text/plain representation of everything dragged.
func NewTextData(text string) *Data {
	return &Data{TextPlain, []byte(text)}
}

// IsText returns true if type is any of the text/ types (literally looks for that
// at start of Type) or is another known text type (e.g., JSON).
func IsText(typ string) bool {
	return strings.HasPrefix(typ, "text/") || typ == DataJSON
}

func (d *Data) String() string {
	if IsText(d.Type) {
		return fmt.Sprintf("%s: %q", d.Type, d.Data)
	}
	return fmt.Sprintf("%s: %d bytes", d.Type, len(d.Data))
}

// Mimes is a slice of mime data, potentially encoding the same data in
// different formats.
type Mimes []*Data

// NewText returns a Mimes representation of the string as a single text/plain Data.
func NewText(text string) Mimes {
	return Mimes{NewTextData(text)}
}

// NewMime returns a Mimes representation of one element.
func NewMime(typ string, data []byte) Mimes {
	return Mimes{{typ, data}}
}

// NewTextPlus returns a Mimes representation of an item as a text string plus
// a more specific type.
func NewTextPlus(text, typ string, data []byte) Mimes {
	return Mimes{NewTextData(text), {typ, data}}
}

// HasType returns true if Mimes has given type of data available.
func (mi Mimes) HasType(typ string) bool {
	for _, d := range mi {
		if d != nil && d.Type == typ {
			return true
		}
	}
	return false
}

// TypeData returns the data associated with the given MIME type,
// and nil if there is none.
func (mi Mimes) TypeData(typ string) []byte {
	for _, d := range mi {
		if d != nil && d.Type == typ {
			return d.Data
		}
	}
	return nil
}

// Text extracts all the text elements of given type as a string.
func (mi Mimes) Text(typ string) string {
	var sb strings.Builder
	for _, d := range mi {
		if d != nil && d.Type == typ {
			sb.Write(d.Data)
		}
	}
	return sb.String()
}

// Clone returns a deep copy of the mime data, so that the
// receiver of a drag cannot mutate the sender's snapshot.
func (mi Mimes) Clone() Mimes {
	if mi == nil {
		return nil
	}
	cp := make(Mimes, len(mi))
	for i, d := range mi {
		if d == nil {
			continue
		}
		cp[i] = &Data{Type: d.Type, Data: append([]byte(nil), d.Data...)}
	}
	return cp
}
