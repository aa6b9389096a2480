// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the default prefix of environment variables read by
// Load. RESPX_RETRY_ATTEMPTS sets retry.attempts.
const EnvPrefix = "RESPX_"

type loadOptions struct {
	file      string
	yaml      []byte
	envPrefix string
	environ   func() []string
	opts      []Option
}

// A LoadOption customizes Load.
type LoadOption func(*loadOptions)

// FromFile layers the YAML file at path over the defaults.
func FromFile(path string) LoadOption {
	return func(lo *loadOptions) { lo.file = path }
}

// FromYAML layers YAML supplied as bytes over the defaults and any
// file.
func FromYAML(b []byte) LoadOption {
	return func(lo *loadOptions) { lo.yaml = b }
}

// WithEnvPrefix changes the environment variable prefix. An empty
// prefix disables environment loading.
func WithEnvPrefix(prefix string) LoadOption {
	return func(lo *loadOptions) { lo.envPrefix = prefix }
}

// WithEnviron replaces os.Environ as the source of environment
// variables.
func WithEnviron(f func() []string) LoadOption {
	return func(lo *loadOptions) { lo.environ = f }
}

// Options applies opts to the loaded Config.
func Options(opts ...Option) LoadOption {
	return func(lo *loadOptions) { lo.opts = append(lo.opts, opts...) }
}

// Load builds a Config from multiple sources with priority:
//  1. Environment variables (highest priority)
//  2. YAML bytes given by FromYAML
//  3. YAML file given by FromFile
//  4. Default values (lowest priority)
func Load(opts ...LoadOption) (*Config, error) {
	s, lo, err := loadSettings(opts...)
	if err != nil {
		return nil, err
	}
	cfg, err := FromSettings(s, lo.opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadSettings is like Load but returns the merged Settings without
// validating them.
func LoadSettings(opts ...LoadOption) (Settings, error) {
	s, _, err := loadSettings(opts...)
	return s, err
}

func loadSettings(opts ...LoadOption) (Settings, *loadOptions, error) {
	lo := &loadOptions{envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(lo)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Settings{}, lo, fmt.Errorf("failed to load defaults: %w", err)
	}
	if lo.file != "" {
		if err := k.Load(file.Provider(lo.file), yaml.Parser()); err != nil {
			return Settings{}, lo, fmt.Errorf("failed to load %s: %w", lo.file, err)
		}
	}
	if len(lo.yaml) > 0 {
		if err := k.Load(rawbytes.Provider(lo.yaml), yaml.Parser()); err != nil {
			return Settings{}, lo, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}
	if lo.envPrefix != "" {
		prefix := lo.envPrefix
		if err := k.Load(env.Provider(".", env.Opt{
			Prefix:      prefix,
			EnvironFunc: lo.environ,
			TransformFunc: func(key, value string) (string, any) {
				key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")
				if strings.HasSuffix(key, ".codes") {
					return key, splitList(value)
				}
				return key, value
			},
		}), nil); err != nil {
			return Settings{}, lo, fmt.Errorf("failed to load environment variables: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, lo, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return s, lo, nil
}

func splitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
