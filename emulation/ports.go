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

package emulation

import (
	"fmt"
	"strings"
)

// Button is a bit in the button mask of a PortState. The meaning of each bit
// is independent of the device connected to the port. Devices with fewer
// buttons map their buttons onto the most appropriate bit.
type Button uint16

// List of logical buttons.
const (
	ButtonUp    Button = 0x0001
	ButtonDown  Button = 0x0002
	ButtonLeft  Button = 0x0004
	ButtonRight Button = 0x0008
	ButtonB     Button = 0x0010
	ButtonC     Button = 0x0020
	ButtonA     Button = 0x0040
	ButtonStart Button = 0x0080
	ButtonZ     Button = 0x0100
	ButtonY     Button = 0x0200
	ButtonX     Button = 0x0400
	ButtonMode  Button = 0x0800

	// the additional sensor beams of the activator ring
	ButtonActivator7L Button = 0x1000
	ButtonActivator7U Button = 0x2000
	ButtonActivator8L Button = 0x4000
	ButtonActivator8U Button = 0x8000
)

// Graphic board buttons share bits with the pad directions.
const (
	ButtonGraphicDo   = ButtonUp
	ButtonGraphicMenu = ButtonDown
	ButtonGraphicPen  = ButtonLeft
)

var buttonNames = []struct {
	b Button
	n string
}{
	{ButtonUp, "Up"}, {ButtonDown, "Down"}, {ButtonLeft, "Left"}, {ButtonRight, "Right"},
	{ButtonA, "A"}, {ButtonB, "B"}, {ButtonC, "C"}, {ButtonStart, "Start"},
	{ButtonX, "X"}, {ButtonY, "Y"}, {ButtonZ, "Z"}, {ButtonMode, "Mode"},
	{ButtonActivator7L, "7L"}, {ButtonActivator7U, "7U"},
	{ButtonActivator8L, "8L"}, {ButtonActivator8U, "8U"},
}

// PortState is the state of a controller port for a single frame.
type PortState struct {
	Buttons uint16

	// the meaning of the axes depends on the device. unused axes are zero
	Axes [2]uint8
}

// Pressed returns true if the button is set.
func (p PortState) Pressed(b Button) bool {
	return p.Buttons&uint16(b) == uint16(b)
}

// Press sets the button.
func (p *PortState) Press(b Button) {
	p.Buttons |= uint16(b)
}

func (p PortState) String() string {
	s := strings.Builder{}
	for _, b := range buttonNames {
		if p.Pressed(b.b) {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(b.n)
		}
	}
	if s.Len() == 0 {
		s.WriteString("-")
	}
	return fmt.Sprintf("%s [%d,%d]", s.String(), p.Axes[0], p.Axes[1])
}
