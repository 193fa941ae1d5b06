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

package organize

// 📄 FileRecord tracks one file through a single run. It is created when a
// scanned entry is classified and discarded after the move or simulate step.
type FileRecord struct {
	SourcePath string // absolute source path
	Category   string // assigned by the categorizer
	Stem       string // original base name without extension
	Ext        string // extension with leading dot, possibly empty
	NewName    string // pattern-expanded name, empty when renaming is off
	DestPath   string // resolved destination, set after collision resolution
}

// 🚫 FileError pairs a failed source path with a human-readable cause
type FileError struct {
	SourcePath string
	Cause      string
}

// 📊 RunResult aggregates one run. It is owned exclusively by the caller
// after Run returns; the engine keeps no reference.
type RunResult struct {
	TotalFiles     int            // files in the snapshot, excluded ones included
	Moved          int            // moved, or would-move in dry-run
	Skipped        int            // excluded by pattern or failed
	CategoryCounts map[string]int // category name -> files placed there
	Errors         []FileError    // per-file failures, in processing order
}

func newRunResult() *RunResult {
	return &RunResult{
		CategoryCounts: make(map[string]int),
		Errors:         []FileError{},
	}
}
