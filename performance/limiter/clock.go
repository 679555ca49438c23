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

import "time"

// Clock is the source of time and the means of sleeping for a Scheduler. All
// values are in milliseconds.
type Clock interface {
	// the current time. must be monotonic
	Now() float64

	// sleep for at least the specified number of milliseconds. the
	// implementation can round down to its own granularity
	Sleep(ms float64)
}

// MonotonicClock implements the Clock interface using the monotonic clock in
// the time package.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock is the preferred method of initialisation for the
// MonotonicClock type.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now implements the Clock interface.
func (clk *MonotonicClock) Now() float64 {
	return float64(time.Since(clk.start)) / float64(time.Millisecond)
}

// Sleep implements the Clock interface.
func (clk *MonotonicClock) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
