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

// Package emulation defines the interface between the synchronisation layer
// and an emulation core. The core is opaque. It is asked to run one frame at
// a time with the current state of the controller ports and returns the video
// and audio generated by that frame.
//
// Types shared by the core and the front end (video standard, viewport
// geometry, port state) are defined here to avoid circular imports.
package emulation

import (
	"fmt"
	"strings"

	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/performance/overclock"
)

// Core is the minimal abstraction of an emulation core.
type Core interface {
	// run one frame with the supplied port states. the audio returned by the
	// function is interleaved signed 16-bit stereo at the device frequency.
	// neither the Frame nor the audio are valid after the next call to
	// StepFrame()
	StepFrame(ports []PortState) (Frame, []int16)

	// the visible area of the most recent Frame and whether it has changed
	// since the previous call to Viewport()
	Viewport() (Rect, bool)

	// hard reset of the emulated machine
	Reset()

	// save states are opaque to the front end
	LoadState(data []byte) error
	SaveState() ([]byte, error)

	// battery backed RAM. nil if the loaded content has none. the returned
	// slice is owned by the core and can be modified by StepFrame()
	BatteryRAM() []byte

	// scale the number of cycles run each frame by the processor
	SetCycleRatio(p overclock.Processor, ratio float64)

	Standard() Standard
	Title() string
}

// Standard is the video standard of the emulated machine.
type Standard int

// List of valid Standard values.
const (
	NTSC Standard = iota
	PAL
)

func (s Standard) String() string {
	switch s {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return fmt.Sprintf("standard(%d)", int(s))
}

// ParseStandard returns the Standard named by s. Case insensitive.
func ParseStandard(s string) (Standard, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NTSC":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return NTSC, curated.Errorf("emulation: unknown television standard (%s)", s)
}

// RefreshRate returns the number of frames per second for the standard.
func (s Standard) RefreshRate() int {
	if s == PAL {
		return 50
	}
	return 60
}

// State indicates the state of the emulation loop.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Paused.
type State int

// List of possible emulation states.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
