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

// Package category maps file extensions to category names
package category

import (
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📂 Fallback is the category assigned to files no extension matches
const Fallback = "Others"

// 🗺️ Table is an immutable mapping from lowercase extensions (with the
// leading dot) to category names. Lookups that miss resolve to Fallback.
type Table struct {
	order []string          // category names in definition order
	byExt map[string]string // ".jpg" -> "Images"
}

// 🏭 New builds a Table from an ordered list of category names and their
// extension lists. Extensions are lower-cased; an extension appearing under
// two categories is rejected.
func New(order []string, extensions map[string][]string) (*Table, error) {
	t := &Table{
		order: append([]string(nil), order...),
		byExt: make(map[string]string),
	}
	for _, name := range order {
		if name == Fallback {
			return nil, errors.Errorf("category %q is reserved for unmatched files", Fallback)
		}
		for _, ext := range extensions[name] {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				return nil, errors.Errorf("extension %q for category %s: missing leading dot", ext, name)
			}
			if prev, ok := t.byExt[ext]; ok {
				return nil, errors.Errorf("extension %q claimed by both %s and %s", ext, prev, name)
			}
			t.byExt[ext] = name
		}
	}
	return t, nil
}

// 🎯 Categorize returns the category name for a filename. It is total: every
// input maps to exactly one category, files without a matching (or any)
// extension map to Fallback.
func (t *Table) Categorize(filename string) string {
	_, ext := SplitExt(filepath.Base(filename))
	if ext == "" {
		return Fallback
	}
	if name, ok := t.byExt[strings.ToLower(ext)]; ok {
		return name
	}
	return Fallback
}

// 📋 Categories returns the category names in definition order, with
// Fallback last.
func (t *Table) Categories() []string {
	return append(append([]string(nil), t.order...), Fallback)
}

// SplitExt splits a base filename into stem and extension. The extension is
// everything from the last dot, except that a dot leading the whole name
// (dotfiles like ".bashrc") does not start an extension.
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// builtin is the fixed table shipped with the organizer. It is constructed
// once at init and never mutated.
var builtin = func() *Table {
	t, err := New(
		[]string{"Images", "Videos", "Documents", "Audio", "Archives", "Code"},
		map[string][]string{
			"Images": {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"},
			"Videos": {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm"},
			"Documents": {
				".pdf", ".doc", ".docx", ".txt", ".xls", ".xlsx",
				".ppt", ".pptx", ".odt", ".csv",
			},
			"Audio":    {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
			"Archives": {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
			"Code": {
				".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".h",
				".json", ".xml", ".yml", ".yaml", ".sh", ".rb", ".go", ".rs",
				".ts", ".tsx", ".jsx",
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}()

// 🎯 Builtin returns the fixed built-in table.
func Builtin() *Table {
	return builtin
}
