// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spincube/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile returns the default config file path,
// ~/.config/spincube/spincube.toml.
func DefaultFile() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "spincube", "spincube.toml"))
}

// File returns the expanded config file name: file with a leading ~
// expanded, or [DefaultFile] if file is empty.
func File(file string) (string, error) {
	if file == "" {
		return DefaultFile()
	}
	return homedir.Expand(file)
}

// Read reads TOML from r into cfg, overwriting only the values it sets.
func Read(cfg *Config, r io.Reader) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
}

// Open reads the given TOML or YAML file into cfg. A leading ~ is expanded.
// Values not in the file keep their current value, so cfg is
// typically a preset from [New].
func Open(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	if IsYAML(fn) {
		return ReadYAML(cfg, f)
	}
	return Read(cfg, f)
}

// Write writes cfg as TOML to w.
func Write(cfg *Config, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

// ReadYAML reads YAML from r into cfg, overwriting only the values it sets.
func ReadYAML(cfg *Config, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// WriteYAML writes cfg as YAML to w.
func WriteYAML(cfg *Config, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// IsYAML returns whether the file is read and written as YAML,
// based on its extension; all other files are TOML.
func IsYAML(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Save writes cfg to the given file as TOML, or as YAML per [IsYAML],
// creating its directory.
func Save(cfg *Config, file string) error {
	fn, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	write := Write
	if IsYAML(fn) {
		write = WriteYAML
	}
	if err := write(cfg, &b); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	return os.WriteFile(fn, b.Bytes(), 0o644)
}

// Load returns the configuration for the given preset overlaid with
// the given TOML or YAML file. An empty preset uses the preset named in the
// file, or [Grid]. An empty file means [DefaultFile], which is
// skipped when it does not exist. The result is validated.
func Load(preset, file string) (*Config, error) {
	fn, err := File(file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fn)
	if err != nil && (file != "" || !errors.Is(err, os.ErrNotExist)) {
		return nil, err
	}

	var head struct {
		Preset *Presets `toml:"preset" yaml:"preset"`
	}
	yml := IsYAML(fn)
	if yml {
		err = yaml.Unmarshal(data, &head)
	} else {
		err = toml.Unmarshal(data, &head)
	}
	if err != nil {
		return nil, err
	}
	p := Grid
	if head.Preset != nil {
		p = *head.Preset
	}
	if preset != "" {
		if err := p.SetString(preset); err != nil {
			return nil, err
		}
	}
	cfg, err := New(p)
	if err != nil {
		return nil, err
	}
	read := Read
	if yml {
		read = ReadYAML
	}
	if err := read(cfg, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	cfg.Preset = p
	return cfg, cfg.Validate()
}
