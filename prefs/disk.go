// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/presetselector/curated"
)

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file while the host program is running ***"

// KeySep separates the key from the value in a prefs file.
const KeySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, curated.Errorf("prefs: %v", "no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of prefs that will be saved and loaded.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) {
		return curated.Errorf("prefs: %v", fmt.Sprintf("illegal key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: %v", fmt.Sprintf("duplicate key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their default state.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// readFile returns all key/value pairs in the prefs file. a missing file
// results in an empty map and no error.
func (dsk *Disk) readFile() (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kv, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: %v", fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}
		kv[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return kv, nil
}

// Save current preference values to disk. Values in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	kv, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		kv[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, kv[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing prefs file is not an error and
// leaves the values unchanged.
//
// A value that cannot be set (for example, a non-numeric value for an Int)
// does not stop other values from being loaded. The first such error is
// returned after all values have been processed.
func (dsk *Disk) Load() error {
	kv, err := dsk.readFile()
	if err != nil {
		return err
	}

	var first error
	for k, v := range kv {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if err := p.Set(v); err != nil && first == nil {
			first = curated.Errorf("prefs: %v", fmt.Errorf("%s: %w", k, err))
		}
	}

	return first
}
