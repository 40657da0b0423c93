// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import "cogentcore.org/colorwell/abilities"

// RoleButton is the accessibility role of every segment.
const RoleButton = "button"

// AccessibilityRole returns the accessibility role of the segment.
func (sg *Segment) AccessibilityRole() string {
	return RoleButton
}

// IsAccessibilityElement returns whether the segment is exposed to
// assistive technology.
func (sg *Segment) IsAccessibilityElement() bool {
	return sg.kind.Abilities().HasFlag(abilities.Accessible)
}

// AccessibilityParent returns the owner, which is the parent element.
func (sg *Segment) AccessibilityParent() Owner {
	return sg.Owner()
}

// AccessibilityLabel returns the descriptive label of the segment's kind.
func (sg *Segment) AccessibilityLabel() string {
	return sg.kind.behavior().label
}

// AccessibilityPerformPress is the press action exposed to assistive
// technology, equivalent to [Segment.PerformAction].
func (sg *Segment) AccessibilityPerformPress() bool {
	if !sg.IsAccessibilityElement() || !sg.IsEnabled() {
		return false
	}
	sg.pressMods = 0
	return sg.PerformAction()
}
