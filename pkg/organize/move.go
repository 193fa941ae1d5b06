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
	"io"
	"os"
	"syscall"

	"gitlab.com/tozd/go/errors"
)

// moveFile renames src to dest, falling back to copy-then-remove when the
// destination sits on a different filesystem (the category folder may be a
// mount point or symlinked elsewhere).
func moveFile(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := copyFile(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV)
}

// copyFile streams src to dest and carries over the source file mode.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return errors.Errorf("copying file content: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}
