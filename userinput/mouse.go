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

package userinput

import "github.com/gxplay/gxplay/emulation"

// MouseDevice is the relative motion mouse.
type MouseDevice struct {
	// multiplier applied to host motion
	Scale int

	// negate vertical motion. the emulated mouse reports upward motion as
	// positive, the opposite of the host
	FlipY bool
}

// NewMouse returns a MouseDevice with the default scale of two and with the
// vertical motion flipped.
func NewMouse() *MouseDevice {
	return &MouseDevice{Scale: 2, FlipY: true}
}

// Kind implements the Device interface.
func (m *MouseDevice) Kind() Kind {
	return Mouse
}

// RelativeMotion returns the scaled motion before it is clamped to the range
// of an axis.
func (m *MouseDevice) RelativeMotion(dx, dy int) (int, int) {
	x := dx * m.Scale
	y := dy * m.Scale
	if m.FlipY {
		y = -y
	}
	return x, y
}

// Sample implements the Device interface.
func (m *MouseDevice) Sample(host HostState, _ emulation.Rect) emulation.PortState {
	var s emulation.PortState

	x, y := m.RelativeMotion(host.RelX, host.RelY)
	s.Axes = [2]uint8{clamp(x), clamp(y)}

	if host.Held(MouseButtonLeft) {
		s.Press(emulation.ButtonB)
	}
	if host.Held(MouseButtonRight) {
		s.Press(emulation.ButtonC)
	}
	if host.Held(MouseButtonMiddle) {
		s.Press(emulation.ButtonA)
	}
	if host.Down(KeyF) {
		s.Press(emulation.ButtonStart)
	}

	return s
}

// Neutral implements the Device interface.
func (m *MouseDevice) Neutral() emulation.PortState {
	return emulation.PortState{}
}
