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

// Package prefs facilitates the storage and retrieval of user preferences.
// Preference values are typed (Bool, Int, Float, String) and can be attached
// to a Disk under a key:
//
//	var fullscreen prefs.Bool
//	dsk, err := prefs.NewDisk(paths.ResourcePath("", "preferences"))
//	err = dsk.Add("video.fullscreen", &fullscreen)
//	err = dsk.Load()
//
// Values can have hook functions that run before and after the value changes.
// A pre hook returning an error prevents the change.
//
// Preferences files are plain text with one "key :: value" entry per line.
// Entries in the file that are not attached to the Disk are preserved when the
// Disk is saved, so more than one Disk can share a file.
//
// The command line stack allows preferences to be overridden for a session
// without the change being written back to disk. See PushCommandLineStack().
package prefs
