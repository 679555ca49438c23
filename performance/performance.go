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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/performance/limiter"
)

// the emulation runs for this long before measurement starts, to allow the
// framerate to settle down
const leadTime = 2 * time.Second

// Check the performance of the emulation core.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. If uncapped is false the frame rate is limited to the refresh
// rate of the core's television standard.
func Check(output io.Writer, profile Profile, core emulation.Core, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%s)", duration)
	}

	var sch *limiter.Scheduler
	if !uncapped {
		sch = limiter.NewScheduler(limiter.NewMonotonicClock(), float64(core.Standard().RefreshRate()))
	}

	// the audio produced by the core is discarded but it still goes through a
	// ring buffer to include the cost of pushing it
	buffer := ring.NewDefault()
	discard := make([]byte, ring.PeriodBytes)

	ports := make([]emulation.PortState, 2)

	var numFrames int

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		measuring := false
		for {
			select {
			case done := <-timerChan:
				if done {
					return nil
				}
				measuring = true
				numFrames = 0
			default:
			}

			_, samples := core.StepFrame(ports)
			buffer.PushSamples(samples)
			for buffer.Queued() >= ring.PeriodBytes {
				buffer.Pull(discard)
			}

			if measuring {
				numFrames++
			}

			if sch != nil {
				sch.Wait()
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(core.Standard(), numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
