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

// Key is one of the keys on the host keyboard that is used by a Device.
type Key int

// List of keys used by the emulated devices.
const (
	KeyA Key = iota
	KeyS
	KeyD
	KeyF
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyKeypad8
	KeyKeypad2
	KeyKeypad4
	KeyKeypad6
	NumKeys
)

var keyNames = [NumKeys]string{
	"A", "S", "D", "F", "Z", "X", "C", "V",
	"G", "H", "J", "K",
	"Up", "Down", "Left", "Right",
	"Keypad 8", "Keypad 2", "Keypad 4", "Keypad 6",
}

func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "unknown"
	}
	return keyNames[k]
}

// MouseButtons is a bit mask of the host mouse buttons.
type MouseButtons uint8

// List of mouse buttons.
const (
	MouseButtonLeft MouseButtons = 1 << iota
	MouseButtonMiddle
	MouseButtonRight
)

// HostState is the state of the host keyboard and mouse at the start of a
// frame.
type HostState struct {
	Keys [NumKeys]bool

	// absolute position of the mouse pointer in window coordinates
	MouseX int
	MouseY int

	// mouse motion since the previous HostState
	RelX int
	RelY int

	Mouse MouseButtons
}

// Down returns true if the key is held.
func (h *HostState) Down(k Key) bool {
	return k >= 0 && k < NumKeys && h.Keys[k]
}

// Held returns true if the mouse button is held.
func (h *HostState) Held(b MouseButtons) bool {
	return h.Mouse&b == b
}
