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

package sdlplay

import (
	"github.com/gxplay/gxplay/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes for each of the keys used by the emulated devices
var scancodes = [userinput.NumKeys]sdl.Scancode{
	userinput.KeyA:       sdl.SCANCODE_A,
	userinput.KeyS:       sdl.SCANCODE_S,
	userinput.KeyD:       sdl.SCANCODE_D,
	userinput.KeyF:       sdl.SCANCODE_F,
	userinput.KeyZ:       sdl.SCANCODE_Z,
	userinput.KeyX:       sdl.SCANCODE_X,
	userinput.KeyC:       sdl.SCANCODE_C,
	userinput.KeyV:       sdl.SCANCODE_V,
	userinput.KeyG:       sdl.SCANCODE_G,
	userinput.KeyH:       sdl.SCANCODE_H,
	userinput.KeyJ:       sdl.SCANCODE_J,
	userinput.KeyK:       sdl.SCANCODE_K,
	userinput.KeyUp:      sdl.SCANCODE_UP,
	userinput.KeyDown:    sdl.SCANCODE_DOWN,
	userinput.KeyLeft:    sdl.SCANCODE_LEFT,
	userinput.KeyRight:   sdl.SCANCODE_RIGHT,
	userinput.KeyKeypad8: sdl.SCANCODE_KP_8,
	userinput.KeyKeypad2: sdl.SCANCODE_KP_2,
	userinput.KeyKeypad4: sdl.SCANCODE_KP_4,
	userinput.KeyKeypad6: sdl.SCANCODE_KP_6,
}

func keyMod() userinput.KeyMod {
	mod := uint32(sdl.GetModState())
	switch {
	case mod&uint32(sdl.KMOD_CTRL) != 0:
		return userinput.KeyModCtrl
	case mod&uint32(sdl.KMOD_ALT) != 0:
		return userinput.KeyModAlt
	case mod&uint32(sdl.KMOD_SHIFT) != 0:
		return userinput.KeyModShift
	}
	return userinput.KeyModNone
}

// PollEvents returns all pending SDL events translated into userinput
// events. Never blocks. SDL events with no userinput equivalent are dropped.
func (scr *SDLPlay) PollEvents() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			events = append(events, userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    keyMod(),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w, h, err := scr.renderer.GetOutputSize()
				if err != nil {
					w, h = ev.Data1, ev.Data2
				}
				events = append(events, userinput.EventWindowResize{W: int(w), H: int(h)})
			case sdl.WINDOWEVENT_MINIMIZED:
				events = append(events, userinput.EventWindowVisible{Visible: false})
			case sdl.WINDOWEVENT_RESTORED:
				events = append(events, userinput.EventWindowVisible{Visible: true})
			}
		}
	}

	return events
}

// HostState samples the current state of the host keyboard and mouse.
func (scr *SDLPlay) HostState() userinput.HostState {
	var host userinput.HostState

	kb := sdl.GetKeyboardState()
	for k, sc := range scancodes {
		if int(sc) < len(kb) {
			host.Keys[k] = kb[sc] != 0
		}
	}

	x, y, state := sdl.GetMouseState()
	host.MouseX = int(x)
	host.MouseY = int(y)

	rx, ry, _ := sdl.GetRelativeMouseState()
	host.RelX = int(rx)
	host.RelY = int(ry)

	if state&sdl.Button(sdl.BUTTON_LEFT) != 0 {
		host.Mouse |= userinput.MouseButtonLeft
	}
	if state&sdl.Button(sdl.BUTTON_MIDDLE) != 0 {
		host.Mouse |= userinput.MouseButtonMiddle
	}
	if state&sdl.Button(sdl.BUTTON_RIGHT) != 0 {
		host.Mouse |= userinput.MouseButtonRight
	}

	return host
}
