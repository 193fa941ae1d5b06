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

// Package scan snapshots the regular files of a target directory
package scan

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// 🚫 ErrNotExist is wrapped when the target directory does not exist
	ErrNotExist = errors.New("target directory does not exist")
	// 🚫 ErrNotDirectory is wrapped when the target path is not a directory
	ErrNotDirectory = errors.New("target is not a directory")
)

// 🔎 Scanner lists the immediate regular files of a directory. Exclude
// patterns are doublestar globs matched against base names.
type Scanner struct {
	excludes []string
}

// 🏭 New creates a Scanner, validating every exclude pattern up front so a
// bad glob fails the run before any file is touched.
func New(excludes []string) (*Scanner, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Scanner{excludes: excludes}, nil
}

// 📸 Scan returns a one-time snapshot of the regular files directly inside
// dir, split into files to process and files skipped by exclude patterns.
// Subdirectories are never entered and never returned. Files appearing after
// the snapshot are not part of the run.
func (s *Scanner) Scan(ctx context.Context, dir string) (files, excluded []string, err error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Errorf("%w: %s", ErrNotExist, dir)
		}
		return nil, nil, errors.Errorf("checking target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, errors.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.Errorf("reading target directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if pattern, ok := s.matchExclude(entry.Name()); ok {
			logger.Debug().Str("file", entry.Name()).Str("pattern", pattern).Msg("excluded by pattern")
			excluded = append(excluded, path)
			continue
		}
		files = append(files, path)
	}

	logger.Debug().Int("files", len(files)).Int("excluded", len(excluded)).Str("dir", dir).Msg("scanned directory")
	return files, excluded, nil
}

// matchExclude reports the first exclude pattern matching name. Patterns
// were validated in New, so a match error here cannot happen.
func (s *Scanner) matchExclude(name string) (string, bool) {
	for _, pattern := range s.excludes {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return pattern, true
		}
	}
	return "", false
}
