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

const (
	// centre position of an analog axis
	analogCentre = 0x80

	// change in axis value per frame while a direction is held
	analogStep = 2
)

// AnalogPad is the XE-1AP analog controller. The left stick is moved with the
// cursor keys and the throttle with the numeric keypad. Axes move towards the
// held direction a little each frame and snap back to the centre when the
// key is released.
//
// The throttle is reported on the first axis of the following port.
type AnalogPad struct {
	x, y     int
	throttle int
}

// NewAnalogPad is the preferred method of initialisation for the AnalogPad
// type.
func NewAnalogPad() *AnalogPad {
	return &AnalogPad{x: analogCentre, y: analogCentre, throttle: analogCentre}
}

// Kind implements the Device interface.
func (a *AnalogPad) Kind() Kind {
	return XE1AP
}

// step the axis value in the direction of the held key.
func step(v int, neg, pos bool) int {
	switch {
	case neg:
		v -= analogStep
	case pos:
		v += analogStep
	default:
		return analogCentre
	}
	return min(max(v, 0), 0xff)
}

// Sample implements the Device interface.
func (a *AnalogPad) Sample(host HostState, _ emulation.Rect) emulation.PortState {
	var s emulation.PortState

	keys := [...]struct {
		k Key
		b emulation.Button
	}{
		{KeyA, emulation.ButtonStart},
		{KeyS, emulation.ButtonA},
		{KeyD, emulation.ButtonC},
		{KeyF, emulation.ButtonY},
		{KeyZ, emulation.ButtonB},
		{KeyX, emulation.ButtonX},
		{KeyC, emulation.ButtonMode},
		{KeyV, emulation.ButtonZ},
	}
	for _, k := range keys {
		if host.Down(k.k) {
			s.Press(k.b)
		}
	}

	a.y = step(a.y, host.Down(KeyUp), host.Down(KeyDown))
	a.x = step(a.x, host.Down(KeyLeft), host.Down(KeyRight))

	// keypad 8 and 2 take priority over 4 and 6
	up := host.Down(KeyKeypad8) || (!host.Down(KeyKeypad2) && host.Down(KeyKeypad4))
	down := !up && (host.Down(KeyKeypad2) || host.Down(KeyKeypad6))
	a.throttle = step(a.throttle, up, down)

	s.Axes = [2]uint8{uint8(a.x), uint8(a.y)}
	return s
}

// Auxiliary returns the throttle position for the following port.
func (a *AnalogPad) Auxiliary() uint8 {
	return uint8(a.throttle)
}

// Neutral implements the Device interface.
func (a *AnalogPad) Neutral() emulation.PortState {
	return emulation.PortState{Axes: [2]uint8{analogCentre, analogCentre}}
}
