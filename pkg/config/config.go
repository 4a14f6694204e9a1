// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = ".punctfix.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Root    string   `json:"root,omitempty" yaml:"root,omitempty"`       // Base directory for patterns
	Include []string `json:"include,omitempty" yaml:"include,omitempty"` // Doublestar patterns to scan
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Doublestar patterns to skip
	Jobs    int      `json:"jobs,omitempty" yaml:"jobs,omitempty"`       // Files processed in parallel

	location string
}

// 🏭 Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Root:    ".",
		Include: []string{"**/*.md"},
		Exclude: []string{"**/node_modules/**", "**/.git/**"},
		Jobs:    1,
	}
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Relative roots are relative to the config file
	if cfg.Root == "" {
		cfg.Root = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	cfg.location = path

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault is Load, except a missing file yields Default when the
// path was not asked for explicitly
func LoadOrDefault(ctx context.Context, path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	defaults := Default()

	if len(cfg.Include) == 0 {
		cfg.Include = defaults.Include
	}
	if cfg.Exclude == nil {
		cfg.Exclude = defaults.Exclude
	}
	if cfg.Root == "" {
		cfg.Root = defaults.Root
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = defaults.Jobs
	}

	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must be positive, got %d", cfg.Jobs)
	}
	for _, pattern := range cfg.Include {
		if strings.TrimSpace(pattern) == "" {
			return errors.New("include patterns must not be empty")
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid include pattern %q", pattern)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: include=%v exclude=%v jobs=%d", cfg.Root, cfg.Include, cfg.Exclude, cfg.Jobs)
}
