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

// Package status renders the per-file action lines and run summary
package status

import (
	"context"
	"sort"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📣 RunInfo describes a run as it starts
type RunInfo struct {
	TargetDir     string // directory being organized
	Simulate      bool   // dry-run mode
	RenamePattern string // empty when renaming is off
}

// 📊 Summary describes a finished run
type Summary struct {
	TotalFiles     int            // files seen in the snapshot
	Moved          int            // moved, or would-move in dry-run
	Skipped        int            // excluded or errored
	CategoryCounts map[string]int // category name -> files placed
	Errors         []string       // one human-readable line per failed file
}

// 📈 Reporter receives the structured facts of a run as it executes. The
// engine calls it synchronously, one event per action line; rendering is
// entirely the implementation's concern.
type Reporter interface {
	RunStarted(ctx context.Context, info RunInfo)
	FolderCreated(ctx context.Context, path string, simulated bool)
	FileMoved(ctx context.Context, source, dest, category string, simulated bool)
	FileExcluded(ctx context.Context, source string)
	FileFailed(ctx context.Context, source string, err error)
	RunFinished(ctx context.Context, summary Summary)
}

// 🔇 Discard is a Reporter that drops every event. It is the engine's
// default so library callers get a silent run unless they install one.
type Discard struct{}

func (Discard) RunStarted(context.Context, RunInfo)                     {}
func (Discard) FolderCreated(context.Context, string, bool)             {}
func (Discard) FileMoved(context.Context, string, string, string, bool) {}
func (Discard) FileExcluded(context.Context, string)                    {}
func (Discard) FileFailed(context.Context, string, error)               {}
func (Discard) RunFinished(context.Context, Summary)                    {}

var _ Reporter = Discard{}

// 🖥️ UserReporter renders events with pterm prefix printers for the
// terminal, mirroring each line into the context's zerolog logger.
type UserReporter struct {
	formatter Formatter
	verbose   bool
}

// 🏭 NewUserReporter creates the terminal reporter. With verbose set, the
// summary repeats every error line in full.
func NewUserReporter(verbose bool) *UserReporter {
	return &UserReporter{
		formatter: NewDefaultFormatter(),
		verbose:   verbose,
	}
}

var _ Reporter = (*UserReporter)(nil)

func (u *UserReporter) RunStarted(ctx context.Context, info RunInfo) {
	msg := u.formatter.FormatRunStart(info)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	zerolog.Ctx(ctx).Info().
		Str("target", info.TargetDir).
		Bool("simulate", info.Simulate).
		Str("pattern", info.RenamePattern).
		Msg("starting run")
}

func (u *UserReporter) FolderCreated(ctx context.Context, path string, simulated bool) {
	msg := u.formatter.FormatFolder(path, simulated)
	if simulated {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "📁"}).Println(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "📁"}).Println(msg)
	}
	zerolog.Ctx(ctx).Info().Str("folder", path).Bool("simulated", simulated).Msg("category folder")
}

func (u *UserReporter) FileMoved(ctx context.Context, source, dest, category string, simulated bool) {
	msg := u.formatter.FormatMove(source, dest, simulated)
	if simulated {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "✨"}).Println(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"}).Println(msg)
	}
	zerolog.Ctx(ctx).Info().
		Str("source", source).
		Str("dest", dest).
		Str("category", category).
		Bool("simulated", simulated).
		Msg("file placed")
}

func (u *UserReporter) FileExcluded(ctx context.Context, source string) {
	pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"}).Println(u.formatter.FormatExcluded(source))
	zerolog.Ctx(ctx).Debug().Str("source", source).Msg("file excluded")
}

func (u *UserReporter) FileFailed(ctx context.Context, source string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(u.formatter.FormatError(source, err))
	zerolog.Ctx(ctx).Error().Err(err).Str("source", source).Msg("file failed")
}

func (u *UserReporter) RunFinished(ctx context.Context, summary Summary) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📊"}).Println("Summary")

	names := make([]string, 0, len(summary.CategoryCounts))
	for name := range summary.CategoryCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pterm.Info.Println(u.formatter.FormatCategoryCount(name, summary.CategoryCounts[name]))
	}
	pterm.Info.Println(u.formatter.FormatTotals(summary))

	if len(summary.Errors) > 0 {
		pterm.Warning.Printfln("%d file(s) failed", len(summary.Errors))
		if u.verbose {
			for _, line := range summary.Errors {
				pterm.Warning.Println("  " + line)
			}
		}
	}

	zerolog.Ctx(ctx).Info().
		Int("total", summary.TotalFiles).
		Int("moved", summary.Moved).
		Int("skipped", summary.Skipped).
		Msg("run finished")
}
