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

// Package config holds the run options and their optional defaults file
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📚 Config is the set of run options. It only carries knobs the CLI also
// exposes as flags; the category table is a fixed built-in and deliberately
// not configurable here.
type Config struct {
	Target  string   `json:"target,omitempty" yaml:"target,omitempty" hcl:"target,optional"`
	DryRun  *bool    `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Rename  string   `json:"rename,omitempty" yaml:"rename,omitempty" hcl:"rename,optional"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Verbose bool     `json:"verbose,omitempty" yaml:"verbose,omitempty" hcl:"verbose,optional"`
}

// 🏭 Default returns the options used when no defaults file exists
func Default() *Config {
	return &Config{Target: "~/Downloads"}
}

// 🔍 Simulate reports the effective dry-run setting. Dry-run is the default;
// it is only off when the file (or a flag) disabled it explicitly.
func (c *Config) Simulate() bool {
	if c.DryRun == nil {
		return true
	}
	return *c.DryRun
}

// 🔍 Validate checks required fields and normalizes the target path,
// expanding a leading ~ to the user's home directory.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.Errorf("target is required")
	}

	if c.Target == "~" || strings.HasPrefix(c.Target, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Errorf("resolving home directory: %w", err)
		}
		c.Target = filepath.Join(home, strings.TrimPrefix(c.Target, "~"))
	}
	c.Target = filepath.Clean(c.Target)

	return nil
}
