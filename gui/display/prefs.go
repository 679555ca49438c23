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

package display

import (
	"github.com/gxplay/gxplay/prefs"
)

// Preferences for the display.
type Preferences struct {
	dsk *prefs.Disk

	Fullscreen     prefs.Bool
	IntegerScaling prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the preferences file at path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("video.fullscreen", &p.Fullscreen)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.integerscaling", &p.IntegerScaling)
	if err != nil {
		return nil, err
	}

	return p, p.Load()
}

// SetDefaults reverts all display settings to default values.
func (p *Preferences) SetDefaults() {
	p.Fullscreen.Set(false)
	p.IntegerScaling.Set(true)
}

// Load display preferences from disk. A missing preferences file is not an
// error.
func (p *Preferences) Load() error {
	return prefs.IgnoreNoPrefsFile(p.dsk.Load())
}

// Save current display preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
