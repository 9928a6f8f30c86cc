// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"cogentcore.org/spincube/config"
	"github.com/spf13/cobra"
)

func newConfig(opts *Options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load(cmd)
			if err != nil {
				return err
			}
			if save != "" {
				if err := config.Save(cfg, save); err != nil {
					return err
				}
				slog.Info("saved config", "file", save)
				return nil
			}
			return config.Write(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "save to this file instead of printing")
	return cmd
}
