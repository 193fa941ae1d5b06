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

package rename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tidydir/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestExpand covers the placeholder substitution rules
func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		stem    string
		index   int
		ext     string
		want    string
	}{
		{"index and name", "{index}_{name}", "photo", 5, ".jpg", "5_photo.jpg"},
		{"first index", "{index}_{name}", "a", 1, ".png", "1_a.png"},
		{"ext placeholder strips dot", "{name}-{ext}", "photo", 1, ".jpg", "photo-jpg.jpg"},
		{"no extension", "{name}.bak{ext}", "README", 1, "", "README.bak"},
		{"constant pattern", "file", "anything", 3, ".txt", "file.txt"},
		{"no leading zeros", "{index}", "x", 12, ".txt", "12.txt"},
		{"name kept verbatim", "{name}", "MiXeD CaSe", 1, ".txt", "MiXeD CaSe.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rename.Expand(tt.pattern, tt.stem, tt.index, tt.ext))
		})
	}
}

// 🧪 TestExpandPreservesExtension checks the true extension always survives
func TestExpandPreservesExtension(t *testing.T) {
	patterns := []string{"{index}", "{name}", "{ext}", "{name}_{ext}", "constant", "{index}_{name}.{ext}"}
	for _, pattern := range patterns {
		got := rename.Expand(pattern, "file", 1, ".mp3")
		assert.True(t, len(got) > 4 && got[len(got)-4:] == ".mp3",
			"Expand(%q) = %q does not end in original extension", pattern, got)
	}
}

// 🧪 TestExpandNoRescan verifies expanded text is not scanned again
func TestExpandNoRescan(t *testing.T) {
	// A stem that happens to contain placeholder syntax must pass through
	// untouched rather than being expanded a second time.
	got := rename.Expand("{name}", "{ext}", 1, ".txt")
	assert.Equal(t, "{ext}.txt", got)
}

// 🧪 TestValidate covers accept and reject cases
func TestValidate(t *testing.T) {
	valid := []string{
		"",
		"constant",
		"{index}",
		"{name}",
		"{ext}",
		"{index}_{name}.{ext}",
		"prefix {name} suffix",
	}
	for _, pattern := range valid {
		assert.NoError(t, rename.Validate(pattern), "pattern %q", pattern)
	}

	invalid := []string{
		"{unknown}",
		"{index",
		"name}",
		"{na{me}}",
		"{}",
		"{INDEX}",
	}
	for _, pattern := range invalid {
		err := rename.Validate(pattern)
		require.Error(t, err, "pattern %q", pattern)
		assert.True(t, errors.Is(err, rename.ErrBadPattern), "pattern %q: %v", pattern, err)
	}
}
