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

// Package pacer counts the frames rendered in each second of emulation time.
//
// A timer drives Tick() at the frame rate of the emulated video standard.
// The main loop calls Rendered() each time a frame is presented. When the
// number of ticks reaches the target frames per second a Report is made
// available on the Reports() channel and both counts are reset.
//
// The Pacer never samples the wall clock. The report is a count of work done
// against a count of timer events and so does not interfere with the timing
// performed by the main loop scheduler.
package pacer

import (
	"fmt"
	"sync"
	"time"

	"github.com/gxplay/gxplay/curated"
)

// Report is emitted once every target ticks.
type Report struct {
	Rendered int
	Target   int
}

func (r Report) String() string {
	return fmt.Sprintf("%d/%d fps", r.Rendered, r.Target)
}

// Pacer implements the frame counting state machine. The zero value is not
// usable, use NewPacer().
type Pacer struct {
	crit     sync.Mutex
	target   int
	ticks    int
	rendered int

	reports chan Report
	pulse   chan struct{}

	// non-nil while the ticker goroutine is running
	quit chan struct{}
	done chan struct{}
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// target is the number of ticks in one second, normally 50 or 60.
func NewPacer(target int) (*Pacer, error) {
	if target <= 0 {
		return nil, curated.Errorf("pacer: illegal target (%d)", target)
	}
	return &Pacer{
		target:  target,
		reports: make(chan Report, 1),
		pulse:   make(chan struct{}, 1),
	}, nil
}

// SetTarget changes the number of ticks per report. The counts are reset.
func (p *Pacer) SetTarget(target int) error {
	if target <= 0 {
		return curated.Errorf("pacer: illegal target (%d)", target)
	}

	p.crit.Lock()
	defer p.crit.Unlock()

	p.target = target
	p.ticks = 0
	p.rendered = 0
	return nil
}

// Target returns the current number of ticks per report.
func (p *Pacer) Target() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.target
}

// Ticks returns the number of ticks since the last report.
func (p *Pacer) Ticks() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.ticks
}

// Tick advances the state machine by one timer event. Called by the timer
// goroutine started by Start() or directly by a caller driving its own timer.
func (p *Pacer) Tick() {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.ticks++
	if p.ticks >= p.target {
		r := Report{Rendered: p.rendered, Target: p.target}
		p.ticks = 0
		p.rendered = 0

		// an unread report is replaced by the new one
		select {
		case p.reports <- r:
		default:
			select {
			case <-p.reports:
			default:
			}
			p.reports <- r
		}
	}

	select {
	case p.pulse <- struct{}{}:
	default:
	}
}

// Rendered is called by the main loop every time a frame is presented.
func (p *Pacer) Rendered() {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.rendered++
}

// Reports returns the channel on which a Report is sent every target ticks.
func (p *Pacer) Reports() <-chan Report {
	return p.reports
}

// Pulse returns a channel that receives a value after every tick. The channel
// acts as a binary semaphore. Ticks that happen while the previous pulse is
// still unconsumed are merged.
func (p *Pacer) Pulse() <-chan struct{} {
	return p.pulse
}

// Start a goroutine calling Tick() hz times a second. The target is set to hz.
// If the Pacer is already running it is restarted.
func (p *Pacer) Start(hz int) error {
	p.Stop()

	if err := p.SetTarget(hz); err != nil {
		return err
	}

	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		tck := time.NewTicker(time.Second / time.Duration(hz))
		defer tck.Stop()
		for {
			select {
			case <-quit:
				return
			case <-tck.C:
				p.Tick()
			}
		}
	}()

	p.crit.Lock()
	p.quit = quit
	p.done = done
	p.crit.Unlock()

	return nil
}

// Stop the goroutine started by Start(). Returns once the goroutine has ended.
// Safe to call if the Pacer is not running.
func (p *Pacer) Stop() {
	p.crit.Lock()
	quit, done := p.quit, p.done
	p.quit = nil
	p.done = nil
	p.crit.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	<-done
}
