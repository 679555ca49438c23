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

package nullcore_test

import (
	"testing"

	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/emulation/nullcore"
	"github.com/gxplay/gxplay/performance/overclock"
	"github.com/gxplay/gxplay/test"
)

// compile time check
var _ emulation.Core = (*nullcore.NullCore)(nil)

func TestStepFrame(t *testing.T) {
	n := nullcore.NewNullCore(emulation.NTSC, "test")

	frame, audio := n.StepFrame(make([]emulation.PortState, 2))
	test.ExpectSuccess(t, frame.Valid())
	test.ExpectEquality(t, frame.Width, nullcore.Width)
	test.ExpectEquality(t, frame.Height, nullcore.Height)

	// one frame of stereo audio at 60Hz
	test.ExpectEquality(t, len(audio), 800*2)

	n = nullcore.NewNullCore(emulation.PAL, "test")
	_, audio = n.StepFrame(nil)
	test.ExpectEquality(t, len(audio), 960*2)
}

func TestViewport(t *testing.T) {
	n := nullcore.NewNullCore(emulation.NTSC, "test")

	vp, changed := n.Viewport()
	test.ExpectSuccess(t, changed)
	test.ExpectEquality(t, vp, emulation.Rect{X: 0, Y: 8, W: 320, H: 224})

	_, changed = n.Viewport()
	test.ExpectFailure(t, changed)

	// reset causes the viewport to be reported again
	n.Reset()
	_, changed = n.Viewport()
	test.ExpectSuccess(t, changed)
}

func TestState(t *testing.T) {
	n := nullcore.NewNullCore(emulation.NTSC, "test")
	n.SetCycleRatio(overclock.M68K, 1.5)
	for range 10 {
		n.StepFrame(nil)
	}

	data, err := n.SaveState()
	test.DemandSuccess(t, err)

	for range 10 {
		n.StepFrame(nil)
	}
	test.ExpectEquality(t, n.Frames(), uint64(20))

	test.ExpectSuccess(t, n.LoadState(data))
	test.ExpectEquality(t, n.Frames(), uint64(10))
	test.ExpectEquality(t, n.Ratio(overclock.M68K), 1.5)

	test.ExpectFailure(t, n.LoadState([]byte("short")))
	test.ExpectFailure(t, n.LoadState(make([]byte, len(data))))
}

func TestBatteryRAM(t *testing.T) {
	n := nullcore.NewNullCore(emulation.NTSC, "test")
	n.StepFrame(nil)
	b := n.BatteryRAM()
	test.ExpectEquality(t, len(b), 0x2000)
	test.ExpectEquality(t, b[0], byte(1))
}
