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

package statefile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/statefile"
	"github.com/gxplay/gxplay/test"
)

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.srm")

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	test.DemandSuccess(t, statefile.Save(fn, data))

	d, err := statefile.Load(fn, 0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, data))

	// load is limited to size
	d, err = statefile.Load(fn, 3)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, data[:3]))

	// a file shorter than size is not an error
	d, err = statefile.Load(fn, 0x10000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), len(data))

	// saving again replaces the file and leaves no temporary files behind
	test.DemandSuccess(t, statefile.Save(fn, data[:2]))
	d, err = statefile.Load(fn, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 2)

	entries, err := os.ReadDir(filepath.Dir(fn))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestNotFound(t *testing.T) {
	_, err := statefile.Load(filepath.Join(t.TempDir(), "missing"), 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, statefile.NotFound))
}

func TestSaveFailure(t *testing.T) {
	err := statefile.Save(filepath.Join(t.TempDir(), "missing", "game.srm"), []byte{0})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}
