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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated console.
//
// It is a translation layer between the GUI implementation and the controller
// ports of the emulation core. The GUI polls the host keyboard and mouse once
// per frame into a HostState. The Mux passes the HostState to the Device bound
// to the active port and returns a PortState for every port.
//
// Discrete events, such as a key being pressed, are delivered as an Event and
// translated into an Action with HandleEvent(). Actions are the hotkeys of the
// application: reset, fullscreen, loading and saving state and so on.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. For example, key names are the names
// returned by SDL_GetKeyName().
package userinput
