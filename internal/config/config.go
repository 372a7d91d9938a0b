// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of a test program's runner
// from defaults, an optional YAML file and AUDIT_* environment
// variables.  Command line flags are applied by the caller.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvPrefix prefixes environment variables overwriting file values,
// e.g. AUDIT_WIDTH=40 or AUDIT_CAPACITY_CHECKS=1000.
const EnvPrefix = "AUDIT_"

// EnvConfig names the environment variable holding the path of the
// configuration file if none is given explicitly.
const EnvConfig = EnvPrefix + "CONFIG"

// Config is a runner's configuration.
type Config struct {
	Color     string   `koanf:"color" yaml:"color"`
	Width     int      `koanf:"width" yaml:"width"`
	PassGlyph string   `koanf:"pass_glyph" yaml:"pass_glyph"`
	FailGlyph string   `koanf:"fail_glyph" yaml:"fail_glyph"`
	Strict    bool     `koanf:"strict" yaml:"strict"`
	Verbose   bool     `koanf:"verbose" yaml:"verbose"`
	Capacity  Capacity `koanf:"capacity" yaml:"capacity"`
	Limit     Limit    `koanf:"limit" yaml:"limit"`
}

// Capacity holds initial capacities of a runner's stores.
type Capacity struct {
	Checks    int `koanf:"checks" yaml:"checks"`
	Messages  int `koanf:"messages" yaml:"messages"`
	Selection int `koanf:"selection" yaml:"selection"`
}

// Limit holds hard limits of a runner's stores; zero is unlimited.
type Limit struct {
	Messages int `koanf:"messages" yaml:"messages"`
}

// Default returns the configuration used if nothing is configured.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.Width == 0 {
		cfg.Width = 80
	}
	if cfg.PassGlyph == "" {
		cfg.PassGlyph = "."
	}
	if cfg.FailGlyph == "" {
		cfg.FailGlyph = "X"
	}
	if cfg.Capacity.Checks == 0 {
		cfg.Capacity.Checks = 100
	}
	if cfg.Capacity.Messages == 0 {
		cfg.Capacity.Messages = 100
	}
	if cfg.Capacity.Selection == 0 {
		cfg.Capacity.Selection = 50
	}
}

// ErrInvalid is wrapped by errors of configurations which can't be
// used.
var ErrInvalid = errors.New("config: invalid")

// Validate fails with ErrInvalid for unusable values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color: %q not in auto, always, never",
			ErrInvalid, c.Color)
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: width: %d < 1", ErrInvalid, c.Width)
	}
	if c.PassGlyph == "" || c.FailGlyph == "" {
		return fmt.Errorf("%w: glyphs must not be empty", ErrInvalid)
	}
	if c.Capacity.Checks < 1 || c.Capacity.Messages < 1 ||
		c.Capacity.Selection < 1 {
		return fmt.Errorf("%w: capacities must be positive", ErrInvalid)
	}
	if c.Limit.Messages < 0 {
		return fmt.Errorf("%w: limit: messages: %d < 0",
			ErrInvalid, c.Limit.Messages)
	}
	return nil
}

// UseColor reports if a report written to given writer is colored.  In
// auto mode this is the case for terminals unless NO_COLOR is set.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// YAML returns c marshaled as YAML.
func (c *Config) YAML() ([]byte, error) { return yaml.Marshal(c) }

// Load reads the configuration file at given path, or at the path
// given by AUDIT_CONFIG if path is empty, and overwrites its values
// from AUDIT_* environment variables.  Keys set by neither keep their
// defaults while explicitly set zero values are validated like any
// other value.  No file is read if both paths are empty.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w",
				path, err)
		}
		if err := validateSchema(k.Raw()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// loaded keys overwrite defaults, explicit zero values included
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps AUDIT_PASS_GLYPH to pass_glyph and AUDIT_CAPACITY_CHECKS
// to capacity.checks.  AUDIT_CONFIG is ignored.
func envKey(s string) string {
	if s == EnvConfig {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"capacity_", "limit_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." +
				strings.TrimPrefix(key, section)
		}
	}
	return key
}

//go:embed config.schema.json
var schemaData []byte

var (
	schema      *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}
		schema, err = compiler.Compile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
		}
	})
	return compileErr
}

// validateSchema validates the values of a configuration file against
// the embedded schema.  The values are passed through JSON to have them
// in the representation the schema validator expects.
func validateSchema(raw map[string]interface{}) error {
	if err := compileSchema(); err != nil {
		return err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
