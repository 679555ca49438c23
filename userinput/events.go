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

// Event represents all the different type of events that can occur in the gui.
type Event interface{}

// KeyMod identifies the modifier key held when a key is pressed.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModAlt
	KeyModCtrl
)

// EventKeyboard is the data for keyboard events.
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventQuit is sent when the window is closed or the process is asked to end.
type EventQuit struct{}

// EventWindowResize is sent when the size of the window changes. The values
// are the size of the drawable area in pixels.
type EventWindowResize struct {
	W int
	H int
}

// EventWindowVisible is sent when the window is minimised or restored.
type EventWindowVisible struct {
	Visible bool
}
