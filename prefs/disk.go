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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/gxplay/gxplay/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const keySep = " :: "

// NoPrefsFile is returned by Load() when the preferences file does not exist.
// This is not a serious error and callers will usually carry on with the
// default values.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys set from the command line stack. these values are for the current
	// session only and are neither loaded nor saved
	overrides map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: empty path")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key must
// not contain the separator sequence or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(keySep)) || strings.ContainsAny(key, "\n\r") {
		return curated.Errorf("prefs: illegal key name (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}

	dsk.entries[key] = p

	// a command line override applies immediately
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.overrides[key] = true
	}

	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the preferences file into a map. a missing file is not an error, in
// which case the returned map is empty and the bool is false.
func (dsk *Disk) read() (map[string]string, bool, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, false, nil
		}
		return nil, false, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line of the file must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, true, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf("prefs: %v", err)
	}

	return entries, true, nil
}

// Save current preference values to disk. Entries in the file belonging to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	entries, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if dsk.overrides[k] {
			continue
		}
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Entries in the file that have not been
// added to the Disk are ignored. If the file does not exist a NoPrefsFile
// error is returned and the existing values are left unchanged.
func (dsk *Disk) Load() error {
	entries, ok, err := dsk.read()
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok || dsk.overrides[k] {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}

	return nil
}

// IgnoreNoPrefsFile returns nil if err is a NoPrefsFile error. Otherwise err
// is returned unchanged.
func IgnoreNoPrefsFile(err error) error {
	if curated.Is(err, NoPrefsFile) {
		return nil
	}
	return err
}
