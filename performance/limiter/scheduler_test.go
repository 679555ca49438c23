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

package limiter_test

import (
	"math"
	"testing"

	"github.com/gxplay/gxplay/performance/limiter"
	"github.com/gxplay/gxplay/test"
)

// fakeClock advances only when told to sleep or when the test moves it
// forward explicitly.
type fakeClock struct {
	now float64

	// round sleeps down to whole milliseconds
	coarse bool
}

func (clk *fakeClock) Now() float64 {
	return clk.now
}

func (clk *fakeClock) Sleep(ms float64) {
	if clk.coarse {
		ms = math.Floor(ms)
	}
	clk.now += ms
}

func TestInterval(t *testing.T) {
	clk := &fakeClock{}
	sch := limiter.NewScheduler(clk, 60)
	test.ExpectApproximate(t, sch.Interval(), 16.6667, 0.0001)
	test.ExpectSuccess(t, sch.SetRefreshRate(50))
	test.ExpectEquality(t, sch.Interval(), 20.0)
	test.ExpectFailure(t, sch.SetRefreshRate(0))
}

func TestNoDrift(t *testing.T) {
	const iterations = 10000

	for _, coarse := range []bool{false, true} {
		clk := &fakeClock{coarse: coarse}
		sch := limiter.NewScheduler(clk, 60)

		start := clk.Now()
		for range iterations {
			sch.Wait()
		}

		// the clock never runs ahead of the schedule. coarse sleeps leave the
		// clock up to one millisecond behind
		expected := start + iterations*sch.Interval()
		test.ExpectApproximate(t, sch.NextTarget()-sch.Interval(), expected, 1e-6, coarse)
		test.ExpectApproximate(t, (clk.Now()-start)/iterations, sch.Interval(), 1.0/iterations, coarse)
		test.ExpectEquality(t, sch.Stalls(), 0, coarse)
	}
}

func TestJitter(t *testing.T) {
	clk := &fakeClock{}
	sch := limiter.NewScheduler(clk, 50)

	// a late iteration, but not late enough to be a stall. the next sleep is
	// shortened to catch up with the schedule
	sch.Wait()
	test.ExpectEquality(t, clk.Now(), 20.0)
	clk.now += 30
	sch.Wait()
	test.ExpectEquality(t, clk.Now(), 50.0)
	test.ExpectEquality(t, sch.NextTarget(), 60.0)
	sch.Wait()
	test.ExpectEquality(t, clk.Now(), 60.0)
	test.ExpectEquality(t, sch.Stalls(), 0)
}

func TestStall(t *testing.T) {
	clk := &fakeClock{}
	sch := limiter.NewScheduler(clk, 60)

	for range 10 {
		sch.Wait()
	}

	// delay by more than the stall threshold. the schedule restarts from the
	// current time
	clk.now += 500
	now := clk.Now()
	sch.Wait()
	test.ExpectEquality(t, sch.Stalls(), 1)
	test.ExpectApproximate(t, sch.NextTarget(), now+sch.Interval(), 1e-9)

	// and normal pacing resumes
	sch.Wait()
	test.ExpectApproximate(t, clk.Now(), now+sch.Interval(), 1e-9)
}

func TestReset(t *testing.T) {
	clk := &fakeClock{}
	sch := limiter.NewScheduler(clk, 50)
	clk.now = 1000
	sch.Reset()
	test.ExpectEquality(t, sch.NextTarget(), 1020.0)
}

func TestMonotonicClock(t *testing.T) {
	clk := limiter.NewMonotonicClock()
	a := clk.Now()
	clk.Sleep(2)
	b := clk.Now()
	test.ExpectSuccess(t, b-a >= 2.0)
}
