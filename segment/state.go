// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

// State is the interaction state of a segment, which determines
// how it is rendered.
type State int32

const (
	// Default is the resting state.
	Default State = iota

	// Hover is when the pointer is over a segment that tracks hovering.
	Hover

	// Highlight is when the segment is being pressed.
	Highlight

	// Pressed is the latched state of a segment whose owner is active.
	Pressed

	StateN
)

var stateNames = [...]string{"Default", "Hover", "Highlight", "Pressed"}

func (s State) String() string {
	if s < 0 || s >= StateN {
		return "State(invalid)"
	}
	return stateNames[s]
}
