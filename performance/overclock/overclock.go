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

// Package overclock scales the number of cycles the emulated processors run
// each frame.
//
// Some content times its own startup by counting cycles and sets its playback
// tempo from the result. Overclocking the processors during that window makes
// the content run too fast for the rest of the session, so the configured
// ratio is withheld for a fixed number of frames after content is loaded.
//
//	oc := overclock.NewOverclock(overclock.DefaultDelay)
//	oc.SetRatio(overclock.M68K, 1.5)
//	oc.Arm()
//	for {
//		for _, r := range oc.Frame() {
//			core.SetCycleRatio(r.Processor, r.Ratio)
//		}
//		...
//	}
package overclock

import (
	"fmt"

	"github.com/gxplay/gxplay/curated"
)

// Processor identifies one of the emulated processors.
type Processor int

// List of valid Processor values.
const (
	M68K Processor = iota
	Z80
	NumProcessors
)

func (p Processor) String() string {
	switch p {
	case M68K:
		return "m68k"
	case Z80:
		return "z80"
	}
	return fmt.Sprintf("processor(%d)", int(p))
}

// DefaultDelay is the number of frames after loading during which the ratio is
// withheld.
const DefaultDelay = 100

// Ratio is the effective cycle ratio for a processor.
type Ratio struct {
	Processor Processor
	Ratio     float64
}

// Overclock tracks the frames since content was loaded and decides the ratio
// that applies to each. Not safe for concurrent use.
type Overclock struct {
	delay  int
	ratios [NumProcessors]float64

	// frames since Arm(). saturates at delay
	frame int

	effective [NumProcessors]Ratio
}

// NewOverclock is the preferred method of initialisation for the Overclock
// type. The ratio for each processor is 1.0 and the warm-up is not armed.
func NewOverclock(delay int) *Overclock {
	oc := &Overclock{}
	for i := range oc.ratios {
		oc.ratios[i] = 1.0
		oc.effective[i] = Ratio{Processor: Processor(i), Ratio: 1.0}
	}
	oc.SetDelay(delay)
	oc.frame = oc.delay
	return oc
}

// SetDelay changes the number of frames in the warm-up window. Negative
// values are treated as zero. Takes effect on the next Arm().
func (oc *Overclock) SetDelay(delay int) {
	oc.delay = max(delay, 0)
}

// SetRatio sets the ratio for the processor. A ratio of 1.0 disables
// overclocking for that processor. Ratios less than 1.0 are not allowed.
func (oc *Overclock) SetRatio(p Processor, ratio float64) error {
	if p < 0 || p >= NumProcessors {
		return curated.Errorf("overclock: unknown processor (%v)", p)
	}
	if ratio < 1.0 {
		return curated.Errorf("overclock: illegal ratio for %v (%v)", p, ratio)
	}
	oc.ratios[p] = ratio
	return nil
}

// Enabled returns true if any processor has a ratio other than 1.0.
func (oc *Overclock) Enabled() bool {
	for _, r := range oc.ratios {
		if r != 1.0 {
			return true
		}
	}
	return false
}

// Arm the warm-up window. Called every time content is loaded.
func (oc *Overclock) Arm() {
	oc.frame = 0
}

// WarmingUp returns true if the configured ratios are being withheld.
func (oc *Overclock) WarmingUp() bool {
	return oc.frame < oc.delay
}

// Frame is called once per frame before the frame is run and returns the
// ratios that apply to that frame. The returned slice is only valid until the
// next call to Frame().
func (oc *Overclock) Frame() []Ratio {
	warm := oc.WarmingUp()
	if warm {
		oc.frame++
	}

	for i := range oc.effective {
		if warm {
			oc.effective[i].Ratio = 1.0
		} else {
			oc.effective[i].Ratio = oc.ratios[i]
		}
	}

	return oc.effective[:]
}
