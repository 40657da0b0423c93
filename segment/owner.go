// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"image/color"

	"cogentcore.org/colorwell/mimedata"
)

// ControlSize is the size preset of a color well.
type ControlSize int32

const (
	Mini ControlSize = iota
	Small
	Regular
	Large

	ControlSizeN
)

var controlSizeNames = [...]string{"mini", "small", "regular", "large"}

func (cs ControlSize) String() string {
	if cs < 0 || cs >= ControlSizeN {
		return "regular"
	}
	return controlSizeNames[cs]
}

// ParseControlSize returns the control size with the given name,
// and false if there is none.
func ParseControlSize(s string) (ControlSize, bool) {
	for i, nm := range controlSizeNames {
		if nm == s {
			return ControlSize(i), true
		}
	}
	return Regular, false
}

// ChangeOptions are the side effects requested when a segment pushes a
// new color into its owner.
type ChangeOptions int32

const (
	// NotifyDelegate calls the owner's delegate.
	NotifyDelegate ChangeOptions = 1 << iota

	// NotifyObservers sends a Change event to the owner's observers.
	NotifyObservers

	// SendAction fires the owner's action.
	SendAction

	// AllChanges requests every side effect.
	AllChanges = NotifyDelegate | NotifyObservers | SendAction
)

// Has returns whether the options include the given option.
func (o ChangeOptions) Has(f ChangeOptions) bool {
	return o&f != 0
}

// ActionTarget receives the secondary action of a color well.
type ActionTarget interface {
	// HandleAction handles the named action sent by the given sender,
	// returning whether it was handled.
	HandleAction(action string, sender any) bool
}

// Owner is the composite control that a segment belongs to.
// Segments only read from it and send requests to it; they never
// mutate its fields directly.
type Owner interface {
	// Color returns the current color value.
	Color() color.RGBA

	// IsActive returns whether the owner is currently driving
	// the shared color panel.
	IsActive() bool

	// IsEnabled returns whether the owner accepts interaction.
	IsEnabled() bool

	// ControlSize returns the size preset.
	ControlSize() ControlSize

	// Swatches returns the preset colors shown in the popover.
	Swatches() []color.RGBA

	// SecondaryAction returns the name of the configured secondary action.
	SecondaryAction() string

	// SecondaryTarget returns the target of the secondary action.
	SecondaryTarget() ActionTarget

	// SetColorWithOptions sets the color value with the given side effects.
	SetColorWithOptions(c color.RGBA, opts ChangeOptions)

	// Activate makes the owner drive the shared color panel. If exclusive,
	// any other active owner is deactivated.
	Activate(exclusive bool)

	// Deactivate stops the owner from driving the shared color panel.
	Deactivate()

	// ShowPopover presents the swatch popover anchored to the given segment,
	// returning whether it was shown.
	ShowPopover(anchor *Segment) bool

	// PerformSecondaryAction forwards the secondary action to its target,
	// returning whether it was handled.
	PerformSecondaryAction() bool

	// StartColorDrag begins a drag-and-drop session carrying the given data.
	StartColorDrag(sg *Segment, md mimedata.Mimes)

	// NeedsRender requests that the given segment be redrawn.
	NeedsRender(sg *Segment)
}

// Handle resolves the owner of a segment without keeping it alive.
// It returns nil once the owner is gone.
type Handle func() Owner

// StrongHandle returns a [Handle] that always resolves to the given owner.
// It is mostly useful in tests and for owners with static lifetimes.
func StrongHandle(o Owner) Handle {
	return func() Owner { return o }
}
