// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cogentcore.org/colorwell/base/errors"
	"cogentcore.org/colorwell/settings"
	"cogentcore.org/colorwell/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// run runs the terminal program until the user quits.
func run(cmd *cobra.Command, s *settings.Settings, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("colorwell: stdout is not a terminal")
	}
	profile := tui.DetectProfile()
	tui.SetProfile(profile)
	m := tui.New(s, profile)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if flags.watch {
		go func() {
			err := settings.Watch(ctx, flags.config, func(s *settings.Settings) {
				if errors.Log(applyFlags(cmd, flags, s)) != nil {
					return
				}
				p.Send(tui.SettingsMsg{Settings: s})
			})
			if ctx.Err() == nil {
				errors.Log(err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
