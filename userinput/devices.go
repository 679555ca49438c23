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

import (
	"fmt"
	"strings"

	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
)

// Kind identifies the type of device bound to a port.
type Kind int

// List of valid Kind values.
const (
	None Kind = iota
	Pad3
	Pad6
	LightGun
	Paddle
	SportsPad
	Mouse
	GraphicBoard
	Terebi
	XE1AP
	Activator
	numKinds
)

var kindNames = [numKinds]string{
	"none", "pad3", "pad6", "lightgun", "paddle", "sportspad",
	"mouse", "graphicboard", "terebi", "xe1ap", "activator",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the name returned by Kind.String(). The
// match is case insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return None, curated.Errorf("userinput: unknown device (%s)", s)
}

// Device decodes the HostState into the PortState for the emulated device.
// Sample() must never block.
type Device interface {
	Kind() Kind

	// the state of the port for the current frame. the viewport is the area
	// of the window that the visible part of the frame is drawn in
	Sample(host HostState, viewport emulation.Rect) emulation.PortState

	// the state of the port when the device is not the active device
	Neutral() emulation.PortState
}

// auxiliary is implemented by devices that also drive an axis on the
// following port.
type auxiliary interface {
	Auxiliary() uint8
}

// NewDevice creates a Device of the specified kind.
func NewDevice(kind Kind) (Device, error) {
	switch kind {
	case None:
		return none{}, nil
	case Pad3:
		return &Pad{Buttons: 3}, nil
	case Pad6:
		return &Pad{Buttons: 6}, nil
	case LightGun:
		return lightGun{}, nil
	case Paddle:
		return paddle{}, nil
	case SportsPad:
		return sportsPad{}, nil
	case Mouse:
		return NewMouse(), nil
	case GraphicBoard:
		return graphicBoard{}, nil
	case Terebi:
		return terebi{}, nil
	case XE1AP:
		return NewAnalogPad(), nil
	case Activator:
		return activator{}, nil
	}
	return nil, curated.Errorf("userinput: unknown device (%v)", kind)
}

// clamp v to the range of an axis.
func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 0xff))
}

// position of the pointer relative to the viewport, scaled so that the width
// and height of the viewport map to the supplied range.
func absolute(host HostState, viewport emulation.Rect, rangeX, rangeY int) (int, int) {
	if viewport.Empty() {
		return 0, 0
	}
	x := (host.MouseX - viewport.X) * rangeX / viewport.W
	y := (host.MouseY - viewport.Y) * rangeY / viewport.H
	return x, y
}

type none struct{}

func (none) Kind() Kind { return None }

func (none) Sample(_ HostState, _ emulation.Rect) emulation.PortState {
	return emulation.PortState{}
}

func (none) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// Pad is a multi-button gamepad operated by the keyboard. A three button pad
// ignores the X, Y, Z and Mode buttons.
type Pad struct {
	Buttons int
}

// Kind implements the Device interface.
func (p *Pad) Kind() Kind {
	if p.Buttons == 3 {
		return Pad3
	}
	return Pad6
}

// Sample implements the Device interface.
func (p *Pad) Sample(host HostState, _ emulation.Rect) emulation.PortState {
	s := padButtons(host)
	if p.Buttons == 3 {
		s.Buttons &^= uint16(emulation.ButtonX | emulation.ButtonY | emulation.ButtonZ | emulation.ButtonMode)
	}
	return s
}

// Neutral implements the Device interface.
func (p *Pad) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// the standard keyboard layout for a pad. opposing directions cannot be held
// at the same time. up and left take priority
func padButtons(host HostState) emulation.PortState {
	var s emulation.PortState

	keys := [...]struct {
		k Key
		b emulation.Button
	}{
		{KeyA, emulation.ButtonA},
		{KeyS, emulation.ButtonB},
		{KeyD, emulation.ButtonC},
		{KeyF, emulation.ButtonStart},
		{KeyZ, emulation.ButtonX},
		{KeyX, emulation.ButtonY},
		{KeyC, emulation.ButtonZ},
		{KeyV, emulation.ButtonMode},
	}
	for _, k := range keys {
		if host.Down(k.k) {
			s.Press(k.b)
		}
	}

	if host.Down(KeyUp) {
		s.Press(emulation.ButtonUp)
	} else if host.Down(KeyDown) {
		s.Press(emulation.ButtonDown)
	}
	if host.Down(KeyLeft) {
		s.Press(emulation.ButtonLeft)
	} else if host.Down(KeyRight) {
		s.Press(emulation.ButtonRight)
	}

	return s
}

type activator struct{}

func (activator) Kind() Kind { return Activator }

func (activator) Sample(host HostState, _ emulation.Rect) emulation.PortState {
	s := padButtons(host)
	if host.Down(KeyG) {
		s.Press(emulation.ButtonActivator7L)
	}
	if host.Down(KeyH) {
		s.Press(emulation.ButtonActivator7U)
	}
	if host.Down(KeyJ) {
		s.Press(emulation.ButtonActivator8L)
	}
	if host.Down(KeyK) {
		s.Press(emulation.ButtonActivator8U)
	}
	return s
}

func (activator) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// light gun position is the pointer position in the viewport.
type lightGun struct{}

func (lightGun) Kind() Kind { return LightGun }

func (lightGun) Sample(host HostState, viewport emulation.Rect) emulation.PortState {
	var s emulation.PortState

	x, y := absolute(host, viewport, 256, 256)
	s.Axes = [2]uint8{clamp(x), clamp(y)}

	// trigger, B, C and start
	if host.Held(MouseButtonLeft) {
		s.Press(emulation.ButtonA)
	}
	if host.Held(MouseButtonRight) {
		s.Press(emulation.ButtonB)
	}
	if host.Held(MouseButtonMiddle) {
		s.Press(emulation.ButtonC)
	}
	if host.Down(KeyF) {
		s.Press(emulation.ButtonStart)
	}

	return s
}

func (lightGun) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// paddle position is the horizontal pointer position. 128 is the middle
type paddle struct{}

func (paddle) Kind() Kind { return Paddle }

func (paddle) Sample(host HostState, viewport emulation.Rect) emulation.PortState {
	var s emulation.PortState

	x, _ := absolute(host, viewport, 256, 256)
	s.Axes[0] = clamp(x)

	if host.Held(MouseButtonLeft) {
		s.Press(emulation.ButtonB)
	}

	return s
}

func (paddle) Neutral() emulation.PortState {
	return emulation.PortState{Axes: [2]uint8{0x80, 0}}
}

// the sports pad reports the negated motion as a two's complement byte
type sportsPad struct{}

func (sportsPad) Kind() Kind { return SportsPad }

func (sportsPad) Sample(host HostState, _ emulation.Rect) emulation.PortState {
	var s emulation.PortState

	s.Axes = [2]uint8{uint8(-host.RelX), uint8(-host.RelY)}

	if host.Held(MouseButtonLeft) {
		s.Press(emulation.ButtonB)
	}
	if host.Held(MouseButtonRight) {
		s.Press(emulation.ButtonC)
	}

	return s
}

func (sportsPad) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// graphic board position covers the whole viewport
type graphicBoard struct{}

func (graphicBoard) Kind() Kind { return GraphicBoard }

func (graphicBoard) Sample(host HostState, viewport emulation.Rect) emulation.PortState {
	var s emulation.PortState

	x, y := absolute(host, viewport, 255, 255)
	s.Axes = [2]uint8{clamp(x), clamp(y)}

	if host.Held(MouseButtonLeft) {
		s.Press(emulation.ButtonGraphicPen)
	}
	if host.Held(MouseButtonRight) {
		s.Press(emulation.ButtonGraphicMenu)
	}
	if host.Held(MouseButtonMiddle) {
		s.Press(emulation.ButtonGraphicDo)
	}

	return s
}

func (graphicBoard) Neutral() emulation.PortState {
	return emulation.PortState{}
}

// the terebi oekaki tablet has a range of 0 to 250
type terebi struct{}

func (terebi) Kind() Kind { return Terebi }

func (terebi) Sample(host HostState, viewport emulation.Rect) emulation.PortState {
	var s emulation.PortState

	x, y := absolute(host, viewport, 250, 250)
	s.Axes = [2]uint8{uint8(min(max(x, 0), 250)), uint8(min(max(y, 0), 250))}

	if host.Held(MouseButtonRight) {
		s.Press(emulation.ButtonB)
	}

	return s
}

func (terebi) Neutral() emulation.PortState {
	return emulation.PortState{}
}
