// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/driver/headless"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRender(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to png files or an animated gif without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load(cmd)
			if err != nil {
				return err
			}
			return headless.Render(cmd.Context(), cfg)
		},
	}
	addWindowFlags(cmd)
	fs := cmd.Flags()
	fs.IntP("frames", "n", 0, "number of frames")
	fs.Float64("hz", 0, "frames per second to pace at; 0 is unpaced")
	fs.StringP("out", "o", "", "output file; png frames are numbered")
	fs.StringP("format", "f", "", "png or gif")
	fs.Int("supersample", 0, "render at this multiple of the size and downscale")
	fs.StringArrayP("script", "s", nil, `scripted action "frame:action[=value]", repeatable`)
	return cmd
}

// setRenderFlags sets the render config from the render flags that were set.
func setRenderFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Lookup("frames") == nil {
		return nil
	}
	var err error
	set := func(name string, fn func() error) {
		if err == nil && fs.Changed(name) {
			err = fn()
		}
	}
	r := &cfg.Render
	set("frames", func() (e error) { r.Frames, e = fs.GetInt("frames"); return })
	set("hz", func() (e error) { r.Hz, e = fs.GetFloat64("hz"); return })
	set("out", func() (e error) { r.Out, e = fs.GetString("out"); return })
	set("format", func() (e error) { r.Format, e = fs.GetString("format"); return })
	set("supersample", func() (e error) { r.Supersample, e = fs.GetInt("supersample"); return })
	set("script", func() error {
		s, e := fs.GetStringArray("script")
		r.Script = append(r.Script, s...)
		return e
	})
	return err
}
