// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/colorwell/events/key"
)

// Key is a low-level keyboard event.
type Key struct {
	Base

	// Text is the text produced by the key, if any.
	// A space bar press has the text " ".
	Text string
}

// NewKey returns a new key event of the given type (KeyDown or KeyUp).
func NewKey(typ Types, text string, mods key.Modifiers) *Key {
	ev := &Key{Text: text}
	ev.Typ = typ
	ev.Init()
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Text: %q, Mods: %v, Time: %v}", ev.Type(), ev.Text, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
