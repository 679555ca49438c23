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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/logger"
	"github.com/gxplay/gxplay/paths"
	"github.com/gxplay/gxplay/statefile"
)

// directory under the resource path for persisted state
const savesPath = "saves"

// battery RAM is never more than this
const maxBatterySize = 0x10000

func statePaths(title string) (string, string, error) {
	battery, err := paths.ResourcePath(savesPath, title+".srm")
	if err != nil {
		return "", "", err
	}
	state, err := paths.ResourcePath(savesPath, title+".gp0")
	if err != nil {
		return "", "", err
	}
	return battery, state, nil
}

func (pm *Playmode) loadBattery() {
	ram := pm.core.BatteryRAM()
	if ram == nil {
		return
	}

	data, err := statefile.Load(pm.batteryPath, maxBatterySize)
	if err != nil {
		if !curated.Is(err, statefile.NotFound) {
			logger.Log(logger.Allow, "playmode", err)
		}
		return
	}

	n := copy(ram, data)
	logger.Logf(logger.Allow, "playmode", "loaded %d bytes of battery RAM", n)
}

func (pm *Playmode) saveBattery() {
	ram := pm.core.BatteryRAM()
	if ram == nil {
		return
	}

	err := statefile.Save(pm.batteryPath, ram)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}

func (pm *Playmode) loadState() {
	data, err := statefile.Load(pm.statePath, 0)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	err = pm.core.LoadState(data)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	logger.Logf(logger.Allow, "playmode", "state loaded from %s", pm.statePath)
}

func (pm *Playmode) saveState() {
	data, err := pm.core.SaveState()
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	err = statefile.Save(pm.statePath, data)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	logger.Logf(logger.Allow, "playmode", "state saved to %s", pm.statePath)
}

// write a graph of the core's memory to a dot file
func (pm *Playmode) dumpState() {
	fn, err := paths.ResourcePath("memviz", paths.UniqueFilename("memviz", pm.core.Title(), "dot"))
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	f, err := os.Create(fn)
	if err != nil {
		logger.Log(logger.Allow, "playmode", curated.Errorf("playmode: %v", err))
		return
	}
	defer f.Close()

	memviz.Map(f, pm.core)

	logger.Logf(logger.Allow, "playmode", "state graph written to %s", fn)
}
