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

// Package organize moves a directory's files into category subfolders
package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tidydir/pkg/category"
	"github.com/walteh/tidydir/pkg/rename"
	"github.com/walteh/tidydir/pkg/scan"
	"github.com/walteh/tidydir/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures an Organizer
type Options struct {
	// TargetDir is the directory whose immediate files are organized
	TargetDir string
	// Simulate computes and reports every decision without touching the filesystem
	Simulate bool
	// RenamePattern is an optional {index}/{name}/{ext} template, empty = keep names
	RenamePattern string
	// Excludes are doublestar globs; matching files are skipped, not errors
	Excludes []string
	// Table overrides the built-in category table, mainly for tests
	Table *category.Table
	// Reporter receives action lines as the run executes
	Reporter status.Reporter
}

// 🎮 Organizer runs one organization pass over a target directory
type Organizer struct {
	targetDir string
	simulate  bool
	pattern   string
	table     *category.Table
	scanner   *scan.Scanner
	reporter  status.Reporter
}

// 🏭 New validates options and creates an Organizer. A malformed rename
// pattern or exclude glob fails here, before any file is touched.
func New(opts Options) (*Organizer, error) {
	if opts.TargetDir == "" {
		return nil, errors.Errorf("target directory is required")
	}
	if opts.RenamePattern != "" {
		if err := rename.Validate(opts.RenamePattern); err != nil {
			return nil, errors.Errorf("validating rename pattern: %w", err)
		}
	}
	scanner, err := scan.New(opts.Excludes)
	if err != nil {
		return nil, errors.Errorf("validating exclude patterns: %w", err)
	}

	table := opts.Table
	if table == nil {
		table = category.Builtin()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = status.Discard{}
	}

	return &Organizer{
		targetDir: opts.TargetDir,
		simulate:  opts.Simulate,
		pattern:   opts.RenamePattern,
		table:     table,
		scanner:   scanner,
		reporter:  reporter,
	}, nil
}

// runState is the only mutable state shared across files within a run
type runState struct {
	counters  map[string]int      // per-category rename indices, start at 1
	reserved  map[string]struct{} // destinations claimed by this run
	announced map[string]bool     // category folders already handled
}

// 🏃 Run executes one pass: scan once, then classify, rename, resolve and
// move (or simulate) each file in snapshot order. Per-file failures are
// recorded in the result and never abort the run; only directory validation
// and pattern errors do.
func (o *Organizer) Run(ctx context.Context) (*RunResult, error) {
	logger := zerolog.Ctx(ctx)

	files, excluded, err := o.scanner.Scan(ctx, o.targetDir)
	if err != nil {
		return nil, err
	}

	result := newRunResult()
	result.TotalFiles = len(files) + len(excluded)
	result.Skipped = len(excluded)

	o.reporter.RunStarted(ctx, status.RunInfo{
		TargetDir:     o.targetDir,
		Simulate:      o.simulate,
		RenamePattern: o.pattern,
	})

	if result.TotalFiles == 0 {
		logger.Info().Str("dir", o.targetDir).Msg("no files to organize")
		o.reporter.RunFinished(ctx, o.summarize(result))
		return result, nil
	}
	for _, path := range excluded {
		o.reporter.FileExcluded(ctx, path)
	}

	run := &runState{
		counters:  make(map[string]int),
		reserved:  make(map[string]struct{}),
		announced: make(map[string]bool),
	}

	for _, path := range files {
		rec, err := o.processFile(ctx, path, run)
		if err != nil {
			logger.Error().Err(err).Str("source", path).Msg("processing file")
			result.Skipped++
			result.Errors = append(result.Errors, FileError{SourcePath: path, Cause: err.Error()})
			o.reporter.FileFailed(ctx, path, err)
			continue
		}
		result.Moved++
		result.CategoryCounts[rec.Category]++
		o.reporter.FileMoved(ctx, path, rec.DestPath, rec.Category, o.simulate)
	}

	o.reporter.RunFinished(ctx, o.summarize(result))
	return result, nil
}

// 📄 processFile takes one file through classify -> rename -> resolve ->
// move-or-simulate. The returned record carries the resolved destination.
func (o *Organizer) processFile(ctx context.Context, path string, run *runState) (*FileRecord, error) {
	base := filepath.Base(path)
	stem, ext := category.SplitExt(base)
	rec := &FileRecord{
		SourcePath: path,
		Category:   o.table.Categorize(base),
		Stem:       stem,
		Ext:        ext,
	}
	zerolog.Ctx(ctx).Debug().Str("file", base).Str("category", rec.Category).Msg("classified")

	name := base
	if o.pattern != "" {
		run.counters[rec.Category]++
		rec.NewName = rename.Expand(o.pattern, stem, run.counters[rec.Category], ext)
		name = rec.NewName
	}

	categoryDir := filepath.Join(o.targetDir, rec.Category)
	dest, err := resolveCollision(filepath.Join(categoryDir, name), run.reserved)
	if err != nil {
		return nil, err
	}
	rec.DestPath = dest

	if err := o.ensureFolder(ctx, categoryDir, run); err != nil {
		return nil, err
	}
	if !o.simulate {
		if err := moveFile(path, dest); err != nil {
			return nil, errors.Errorf("moving to %s: %w", dest, err)
		}
	}
	run.reserved[dest] = struct{}{}
	return rec, nil
}

// ensureFolder makes sure the category folder exists (or, in simulate mode,
// reports that it would be created). A pre-existing folder is reused
// silently; each folder is announced at most once per run.
func (o *Organizer) ensureFolder(ctx context.Context, dir string, run *runState) error {
	if run.announced[dir] {
		return nil
	}

	if _, err := os.Stat(dir); err == nil {
		run.announced[dir] = true
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking category folder: %w", err)
	}

	if !o.simulate {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Errorf("creating category folder: %w", err)
		}
	}
	o.reporter.FolderCreated(ctx, dir, o.simulate)
	run.announced[dir] = true
	return nil
}

func (o *Organizer) summarize(result *RunResult) status.Summary {
	lines := make([]string, 0, len(result.Errors))
	for _, fe := range result.Errors {
		lines = append(lines, fmt.Sprintf("%s: %s", fe.SourcePath, fe.Cause))
	}
	return status.Summary{
		TotalFiles:     result.TotalFiles,
		Moved:          result.Moved,
		Skipped:        result.Skipped,
		CategoryCounts: result.CategoryCounts,
		Errors:         lines,
	}
}
