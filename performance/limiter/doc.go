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

// Package limiter paces the main emulation loop to the refresh rate of the
// emulated video standard.
//
// A new Scheduler can be created with:
//
//	sch := limiter.NewScheduler(limiter.NewMonotonicClock(), 60)
//
// and the main loop stalled until the next frame is due with the Wait()
// function:
//
//	for {
//		sch.Wait()
//		runFrame()
//	}
//
// The time of the next frame is always the previous target plus the frame
// interval, never the time the previous Wait() returned, so the error caused
// by coarse or late sleeps does not accumulate.
//
// If the loop falls more than StallThreshold behind, for example because the
// window was being dragged or the process was stopped, the schedule is
// resynchronised to the current time. There is no burst of catch-up frames.
package limiter
