// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	popoverStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244"))

	borderColor    = lipgloss.Color("244")
	hoverColor     = lipgloss.Color("252")
	highlightColor = lipgloss.Color("231")
	focusColor     = lipgloss.Color("205")
	dropColor      = lipgloss.Color("42")
)

// DetectProfile returns the color profile of the terminal
// from the environment.
func DetectProfile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// SetProfile makes all rendering use the given color profile.
func SetProfile(p termenv.Profile) {
	lipgloss.SetColorProfile(p)
}
