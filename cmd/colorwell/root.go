// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/colorwell/settings"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config   string
	style    string
	wells    int
	watch    bool
	logFile  string
	logLevel string
}

// runFunc runs the program with the loaded settings.
type runFunc func(cmd *cobra.Command, s *settings.Settings, flags *rootFlags) error

func newRootCmd(run runFunc) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "colorwell",
		Short:         "Interactive color wells in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(flags.logFile, s.Level())
			if err != nil {
				return err
			}
			defer closeLog()
			slog.Info("starting", "style", s.Style, "wells", s.Wells, "config", flags.config)
			return run(cmd, s, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Settings file (.toml, .yaml, or .yml)")
	cmd.Flags().StringVarP(&flags.style, "style", "s", "", "Well style: swatch, default, minimal, or expanded")
	cmd.Flags().IntVarP(&flags.wells, "wells", "n", 0, "Number of wells to show")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Reload the settings file when it changes")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "File to write logs to; logs are discarded if empty")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, or error")

	return cmd
}

// loadSettings loads the settings file and applies the flags
// that were set on the command line over it.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (*settings.Settings, error) {
	if flags.watch && flags.config == "" {
		return nil, errors.New("--watch requires --config")
	}
	s, err := settings.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, flags, s); err != nil {
		return nil, err
	}
	return s, nil
}

// applyFlags overrides the given settings with the flags
// that were set, and validates the result.
func applyFlags(cmd *cobra.Command, flags *rootFlags, s *settings.Settings) error {
	fs := cmd.Flags()
	if fs.Changed("style") {
		s.Style = flags.style
	}
	if fs.Changed("wells") {
		s.Wells = flags.wells
	}
	if fs.Changed("log-level") {
		s.LogLevel = flags.logLevel
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// setupLogging installs the default logger. The terminal belongs to the
// program, so logs go to the given file or nowhere.
func setupLogging(filename string, level slog.Level) (func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}
	if filename != "" {
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeLog, nil
}
