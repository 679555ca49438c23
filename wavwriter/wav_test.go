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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gxplay/gxplay/test"
	"github.com/gxplay/gxplay/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "audio.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	samples := []int16{0, 0, 1000, -1000, 32767, -32768}
	test.ExpectSuccess(t, aw.Write(samples))
	test.ExpectSuccess(t, aw.Write(samples))
	test.ExpectEquality(t, aw.Frames(), 6)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(48000))
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 12)
	test.ExpectEquality(t, buf.Data[2], 1000)
	test.ExpectEquality(t, buf.Data[3], -1000)
	test.ExpectEquality(t, buf.Data[11], -32768)
}
