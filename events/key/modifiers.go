// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the keyboard modifier flags carried by events.
package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the "Windows" key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

var modifierNames = []struct {
	flag Modifiers
	name string
}{
	{Control, "Control"},
	{Meta, "Meta"},
	{Alt, "Alt"},
	{Shift, "Shift"},
}

// HasFlag returns whether these modifiers include the given flag.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets the value of the given flags in these modifiers.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= fl
		} else {
			*m &^= fl
		}
	}
}

// ModifiersString returns the modifiers joined with "+",
// in the canonical order Control, Meta, Alt, Shift.
func (m Modifiers) ModifiersString() string {
	var names []string
	for _, mn := range modifierNames {
		if m.HasFlag(mn.flag) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, "+")
}

func (m Modifiers) String() string {
	return m.ModifiersString()
}
