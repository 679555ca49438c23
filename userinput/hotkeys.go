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

// Action is the result of handling an Event.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionFullscreen
	ActionLoadState
	ActionSaveState
	ActionDumpState
	ActionCyclePort
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionReset:
		return "reset"
	case ActionFullscreen:
		return "fullscreen"
	case ActionLoadState:
		return "load state"
	case ActionSaveState:
		return "save state"
	case ActionDumpState:
		return "dump state"
	case ActionCyclePort:
		return "cycle port"
	case ActionResize:
		return "resize"
	}
	return "unknown"
}

// keyboard hotkeys. keys are the names returned by SDL_GetKeyName()
var hotkeys = map[string]Action{
	"Tab":    ActionReset,
	"F4":     ActionFullscreen,
	"F7":     ActionLoadState,
	"F8":     ActionSaveState,
	"F9":     ActionDumpState,
	"F12":    ActionCyclePort,
	"Escape": ActionQuit,
}

// HandleEvent deciphers the Event and returns the Action it represents. Key
// releases, repeats and keys held with a modifier are not actions.
func HandleEvent(ev Event) Action {
	switch ev := ev.(type) {
	case EventQuit:
		return ActionQuit
	case EventWindowResize:
		return ActionResize
	case EventKeyboard:
		if !ev.Down || ev.Repeat || ev.Mod != KeyModNone {
			return ActionNone
		}
		if a, ok := hotkeys[ev.Key]; ok {
			return a
		}
	}
	return ActionNone
}
