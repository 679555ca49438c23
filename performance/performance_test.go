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

package performance_test

import (
	"strings"
	"testing"

	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/emulation/nullcore"
	"github.com/gxplay/gxplay/performance"
	"github.com/gxplay/gxplay/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(emulation.NTSC, 600, 10)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(emulation.PAL, 600, 10)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 120.0, 0.001)

	fps, accuracy = performance.CalcFPS(emulation.PAL, 600, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check runs for more than two seconds")
	}

	w := &test.CompareWriter{}
	core := nullcore.NewNullCore(emulation.NTSC, "performance")

	err := performance.Check(w, performance.ProfileNone, core, false, "250ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), " fps ("))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "%\n"))
	test.ExpectSuccess(t, core.Frames() > 0)

	err = performance.Check(w, performance.ProfileNone, core, true, "bad duration")
	test.ExpectFailure(t, err)
}
