// This file is part of gxplay.
//
// gxplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gxplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gxplay.  If not, see <https://www.gnu.org/licenses/>.

// Package statefile reads and writes the files that persist emulation state
// between sessions: battery backed RAM and save states. Files are always read
// and written whole.
//
// Failures are returned as curated errors. Callers are expected to log them
// and carry on without the file.
package statefile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gxplay/gxplay/curated"
)

// NotFound is returned by Load() when there is no file at the path.
const NotFound = "statefile: %s not found"

// Load at most size bytes from the beginning of the file at path. If size is
// zero or less the whole file is loaded. The returned slice is shorter than
// size if the file is shorter.
func Load(path string, size int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotFound, path)
		}
		return nil, curated.Errorf("statefile: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if size > 0 {
		r = io.LimitReader(f, int64(size))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("statefile: %v", err)
	}

	return data, nil
}

// Save data to the file at path, replacing any existing file. The data is
// written to a temporary file first so that a failed write does not destroy
// the previous file.
func Save(path string, data []byte) (rerr error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return curated.Errorf("statefile: %v", err)
	}
	defer func() {
		if rerr != nil {
			_ = os.Remove(f.Name())
		}
	}()

	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return curated.Errorf("statefile: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("statefile: %v", err)
	}

	err = os.Rename(f.Name(), path)
	if err != nil {
		return curated.Errorf("statefile: %v", err)
	}

	return nil
}
