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

// Package rename expands user rename patterns into concrete filenames
package rename

import (
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrBadPattern is wrapped by all pattern validation failures
var ErrBadPattern = errors.New("invalid rename pattern")

// placeholders recognized inside {...}
var placeholders = map[string]bool{
	"index": true,
	"name":  true,
	"ext":   true,
}

// 🔍 Validate rejects patterns with unbalanced braces or unknown
// placeholders before any file is touched. A pattern with no placeholders at
// all is valid: it names every file in a category identically and leaves
// disambiguation to collision resolution.
func Validate(pattern string) error {
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		closing := strings.IndexByte(rest, '}')
		if open == -1 {
			if closing != -1 {
				return errors.Errorf("%w: unmatched '}' in %q", ErrBadPattern, pattern)
			}
			return nil
		}
		if closing == -1 {
			return errors.Errorf("%w: unmatched '{' in %q", ErrBadPattern, pattern)
		}
		if closing < open {
			return errors.Errorf("%w: '}' before '{' in %q", ErrBadPattern, pattern)
		}
		inner := rest[open+1 : closing]
		if strings.ContainsRune(inner, '{') {
			return errors.Errorf("%w: nested '{' in %q", ErrBadPattern, pattern)
		}
		if !placeholders[inner] {
			return errors.Errorf("%w: unknown placeholder {%s} in %q", ErrBadPattern, inner, pattern)
		}
		rest = rest[closing+1:]
	}
}

// 🔄 Expand substitutes the pattern's placeholders and reattaches the
// original extension:
//
//	{index} -> decimal index (per category, starts at 1)
//	{name}  -> original stem, verbatim
//	{ext}   -> extension without the leading dot
//
// Each placeholder is substituted exactly once; expanded text is never
// re-scanned, so a stem that itself contains "{ext}" passes through
// literally. The true extension (dot included) is always appended, whether
// or not the pattern used {ext}.
func Expand(pattern, stem string, index int, ext string) string {
	r := strings.NewReplacer(
		"{index}", strconv.Itoa(index),
		"{name}", stem,
		"{ext}", strings.TrimPrefix(ext, "."),
	)
	return r.Replace(pattern) + ext
}
