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

package playmode

import (
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/logger"
	"github.com/gxplay/gxplay/userinput"
)

func (pm *Playmode) handleEvent(ev userinput.Event) {
	if ev, ok := ev.(userinput.EventWindowVisible); ok {
		pm.setVisible(ev.Visible)
		return
	}

	switch userinput.HandleEvent(ev) {
	case userinput.ActionQuit:
		pm.state = emulation.Ending

	case userinput.ActionReset:
		pm.core.Reset()
		logger.Log(logger.Allow, "playmode", "reset")

	case userinput.ActionFullscreen:
		err := pm.platform.ToggleFullscreen()
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
		pm.relayout = true

	case userinput.ActionResize:
		pm.platform.Resize()
		pm.relayout = true

	case userinput.ActionLoadState:
		pm.loadState()

	case userinput.ActionSaveState:
		pm.saveState()

	case userinput.ActionDumpState:
		pm.dumpState()

	case userinput.ActionCyclePort:
		p := pm.mux.Cycle()
		logger.Logf(logger.Allow, "playmode", "input on port %d (%s)", p+1, pm.mux.Device(p).Kind())
	}
}

// the emulation does not run while the window is minimised. the ring buffer
// underruns and the device plays silence
func (pm *Playmode) setVisible(visible bool) {
	switch {
	case !visible && pm.state == emulation.Running:
		pm.state = emulation.Paused
	case visible && pm.state == emulation.Paused:
		pm.state = emulation.Running
		pm.scheduler.Reset()
		pm.relayout = true
	}
}
