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
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/performance/overclock"
	"github.com/gxplay/gxplay/prefs"
	"github.com/gxplay/gxplay/userinput"
)

// Valid values for the pacing.mode preference.
const (
	PacingClock = "clock"
	PacingTimer = "timer"
)

// Valid values for the audio.backend preference.
const (
	AudioSDL = "sdl"
	AudioOto = "oto"
)

// Preferences for play mode.
type Preferences struct {
	dsk *prefs.Disk

	AudioEnabled   prefs.Bool
	AudioBackend   prefs.String
	PacingMode     prefs.String
	OverclockM68K  prefs.Float
	OverclockZ80   prefs.Float
	OverclockDelay prefs.Int
	Ports          prefs.String
	InvertMouse    prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the preferences file at path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.AudioBackend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case AudioSDL, AudioOto:
			return nil
		}
		return curated.Errorf("playmode: unknown audio backend (%v)", v)
	})
	p.PacingMode.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case PacingClock, PacingTimer:
			return nil
		}
		return curated.Errorf("playmode: unknown pacing mode (%v)", v)
	})
	p.OverclockM68K.SetHookPre(validRatio)
	p.OverclockZ80.SetHookPre(validRatio)
	p.Ports.SetHookPre(func(v prefs.Value) error {
		_, err := userinput.ParseBindings(v.(string))
		return err
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("audio.enabled", &p.AudioEnabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.backend", &p.AudioBackend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("pacing.mode", &p.PacingMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overclock.m68k", &p.OverclockM68K)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overclock.z80", &p.OverclockZ80)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overclock.delay", &p.OverclockDelay)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.ports", &p.Ports)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.mouse.invert", &p.InvertMouse)
	if err != nil {
		return nil, err
	}

	return p, p.Load()
}

func validRatio(v prefs.Value) error {
	if v.(float64) < 1.0 {
		return curated.Errorf("playmode: overclock ratio must be at least 1.0 (%v)", v)
	}
	return nil
}

// SetDefaults reverts all play mode settings to default values.
func (p *Preferences) SetDefaults() {
	p.AudioEnabled.Set(true)
	p.AudioBackend.Set(AudioSDL)
	p.PacingMode.Set(PacingClock)
	p.OverclockM68K.Set(1.0)
	p.OverclockZ80.Set(1.0)
	p.OverclockDelay.Set(overclock.DefaultDelay)
	p.Ports.Set("pad6,pad3")
	p.InvertMouse.Set(true)
}

// Load play mode preferences from disk. A missing preferences file is not an
// error.
func (p *Preferences) Load() error {
	return prefs.IgnoreNoPrefsFile(p.dsk.Load())
}

// Save current play mode preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
