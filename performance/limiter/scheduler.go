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

package limiter

import "github.com/gxplay/gxplay/curated"

// StallThreshold is the number of milliseconds the loop can fall behind before
// the schedule is resynchronised with the clock.
const StallThreshold = 100.0

// Scheduler stalls the main loop so that it runs once per frame interval.
// Not safe for concurrent use.
type Scheduler struct {
	clock    Clock
	interval float64
	previous float64
	stalls   int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The refresh rate is in Hz and must be positive.
func NewScheduler(clock Clock, hz float64) *Scheduler {
	sch := &Scheduler{clock: clock}
	if err := sch.SetRefreshRate(hz); err != nil {
		panic(err)
	}
	sch.previous = clock.Now()
	return sch
}

// SetRefreshRate changes the frame interval. The schedule is not reset.
func (sch *Scheduler) SetRefreshRate(hz float64) error {
	if hz <= 0 {
		return curated.Errorf("limiter: illegal refresh rate (%v)", hz)
	}
	sch.interval = 1000.0 / hz
	return nil
}

// Interval returns the frame interval in milliseconds.
func (sch *Scheduler) Interval() float64 {
	return sch.interval
}

// NextTarget returns the time, according to the Clock, that the next call to
// Wait() will stall until.
func (sch *Scheduler) NextTarget() float64 {
	return sch.previous + sch.interval
}

// Stalls returns the number of times the schedule has been resynchronised.
func (sch *Scheduler) Stalls() int {
	return sch.stalls
}

// Reset the schedule to the current time.
func (sch *Scheduler) Reset() {
	sch.previous = sch.clock.Now()
}

// Wait until the next frame is due.
func (sch *Scheduler) Wait() {
	now := sch.clock.Now()

	if now >= sch.previous+StallThreshold {
		sch.previous = now
		sch.stalls++
		return
	}

	next := sch.previous + sch.interval
	if next > now {
		sch.clock.Sleep(next - now)
	}
	sch.previous = next
}
