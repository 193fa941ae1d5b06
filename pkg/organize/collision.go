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

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/tidydir/pkg/category"
	"gitlab.com/tozd/go/errors"
)

// maxCollisionProbes bounds the suffix search so pathological directories
// (a pre-existing file for every counter value) fail the single file instead
// of looping forever.
const maxCollisionProbes = 10000

// 🔀 resolveCollision returns a destination path that does not exist on disk
// and is not reserved by this run. A free candidate is returned unchanged;
// otherwise stem_1, stem_2, ... are probed in order and the first free name
// wins.
//
// The existence check and the later move are not atomic; external writers
// racing the run can still claim a name in between. That window is part of
// the contract, not guarded against.
func resolveCollision(candidate string, reserved map[string]struct{}) (string, error) {
	free, err := pathFree(candidate, reserved)
	if err != nil {
		return "", err
	}
	if free {
		return candidate, nil
	}

	stem, ext := splitPathExt(candidate)
	for i := 1; i <= maxCollisionProbes; i++ {
		probe := fmt.Sprintf("%s_%d%s", stem, i, ext)
		free, err := pathFree(probe, reserved)
		if err != nil {
			return "", err
		}
		if free {
			return probe, nil
		}
	}
	return "", errors.Errorf("no free name for %s after %d attempts", candidate, maxCollisionProbes)
}

func pathFree(path string, reserved map[string]struct{}) (bool, error) {
	if _, ok := reserved[path]; ok {
		return false, nil
	}
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, errors.Errorf("checking destination %s: %w", path, err)
	}
	return false, nil
}

// splitPathExt splits a full path into everything before the extension and
// the extension itself, with the same dotfile handling as the categorizer.
func splitPathExt(path string) (string, string) {
	stem, ext := category.SplitExt(filepath.Base(path))
	return filepath.Join(filepath.Dir(path), stem), ext
}
