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

package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tidydir/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🧪 testContext returns a context carrying a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

// 🧪 TestScanFilesOnly verifies only immediate regular files are returned
func TestScanFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFiles(t, filepath.Join(dir, "sub"), "nested.txt")

	scanner, err := scan.New(nil)
	require.NoError(t, err)

	files, excluded, err := scanner.Scan(testContext(t), dir)
	require.NoError(t, err)
	assert.Empty(t, excluded)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.jpg"),
	}, files)
}

// 🧪 TestScanExcludes verifies exclude globs split the snapshot
func TestScanExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.txt", "skip.tmp", "also.tmp")

	scanner, err := scan.New([]string{"*.tmp"})
	require.NoError(t, err)

	files, excluded, err := scanner.Scan(testContext(t), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "keep.txt")}, files)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "skip.tmp"),
		filepath.Join(dir, "also.tmp"),
	}, excluded)
}

// 🧪 TestScanMissingDirectory verifies the fatal error for a missing target
func TestScanMissingDirectory(t *testing.T) {
	scanner, err := scan.New(nil)
	require.NoError(t, err)

	_, _, err = scanner.Scan(testContext(t), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrNotExist))
}

// 🧪 TestScanNotADirectory verifies the fatal error for a file target
func TestScanNotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "file.txt")

	scanner, err := scan.New(nil)
	require.NoError(t, err)

	_, _, err = scanner.Scan(testContext(t), filepath.Join(dir, "file.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scan.ErrNotDirectory))
}

// 🧪 TestNewRejectsBadGlob verifies exclude patterns fail fast
func TestNewRejectsBadGlob(t *testing.T) {
	_, err := scan.New([]string{"["})
	require.Error(t, err)
}

// 🧪 TestScanEmptyDirectory verifies an empty snapshot is not an error
func TestScanEmptyDirectory(t *testing.T) {
	scanner, err := scan.New(nil)
	require.NoError(t, err)

	files, excluded, err := scanner.Scan(testContext(t), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, excluded)
}
