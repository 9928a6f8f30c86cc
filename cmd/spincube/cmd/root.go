// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd has the spincube commands, shared by the
// spincube binaries.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/logx"
	"github.com/spf13/cobra"
)

// Options are the persistent flags of all commands.
type Options struct {
	File     string
	Preset   string
	LogLevel string
}

// Runner runs a scene of the config in a window until it is closed.
// Configs received on updates, if it is non-nil, are applied to the
// running scene.
type Runner func(cfg *config.Config, updates <-chan *config.Config) error

// NewRoot returns the root command. The window command opens
// windows with run.
func NewRoot(name string, run Runner) *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:           name,
		Short:         "A rotating cube with zoom, scale, rotation and recolor controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.InitLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.File, "config", "c", "", "config file (default ~/.config/spincube/spincube.toml)")
	pf.StringVarP(&opts.Preset, "preset", "p", "", "preset: grid or lit (default from the config file, else grid)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	win := &cobra.Command{
		Use:   "window",
		Short: "Show the cube in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load(cmd)
			if err != nil {
				return err
			}
			var updates <-chan *config.Config
			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				updates, err = config.Watch(cmd.Context(), opts.Preset, opts.File)
				if err != nil {
					slog.Warn("not watching config file", "err", err)
				}
			}
			return run(cfg, updates)
		},
	}
	addWindowFlags(win)

	root.AddCommand(win, newRender(opts), newConfig(opts))
	root.RunE = win.RunE
	addWindowFlags(root)
	return root
}

// Load loads the config per the options and the flags of the command
// that were set, and sets the log level.
func (o *Options) Load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.Preset, o.File)
	if err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if err := logx.SetUserLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Window.Width, _ = fs.GetInt("width")
	}
	if fs.Changed("height") {
		cfg.Window.Height, _ = fs.GetInt("height")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}
	if err := setRenderFlags(fs, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("loaded config", "preset", cfg.Preset, "file", o.File)
	return cfg, nil
}

func addWindowFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Int("width", 0, "window or image width")
	fs.Int("height", 0, "window or image height")
	fs.Int64("seed", 0, "random seed for recoloring; 0 is random")
	fs.Bool("watch", false, "apply changes to the anim and controls sections of the config file while running")
}

// Execute runs the root command and exits with status 1 on error.
func Execute(name string, run Runner) {
	if err := NewRoot(name, run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
