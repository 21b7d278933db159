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

package bindstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/ini.v1"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/keybind"
)

// Section is the name of the INI section containing the bindings.
const Section = "PresetKeybinds"

// prefixes of the keys in the INI section. the suffix of each key is the
// index of the binding
const (
	presetKey  = "Preset_"
	keybindKey = "Keybind_"
	actionKey  = "Action_"
)

// how long to wait for another process to release the lock file
const lockTimeout = 500 * time.Millisecond
const lockRetry = 10 * time.Millisecond

func init() {
	// write "key=value" rather than aligning the equals signs
	ini.PrettyFormat = false
}

var loadOptions = ini.LoadOptions{
	// preset paths can contain the comment characters
	IgnoreInlineComment: true,
}

// Store is the file on disk in which bindings are kept.
type Store struct {
	path string
	lock *flock.Flock

	// the modification time and size of the file the last time it was loaded
	// or saved
	stamp stamp
}

type stamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

func stampFile(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}

// NewStore is the preferred method of initialisation for the Store type. The
// file does not need to exist.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, curated.Errorf("bindings: %v", "no file specified")
	}
	return &Store{
		path: path,
		lock: flock.New(fmt.Sprintf("%s.lock", path)),
	}, nil
}

// Path returns the path of the bindings file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) acquire(shared bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	var ok bool
	var err error
	if shared {
		ok, err = s.lock.TryRLockContext(ctx, lockRetry)
	} else {
		ok, err = s.lock.TryLockContext(ctx, lockRetry)
	}
	if err != nil {
		return curated.Errorf("lock: %v", err)
	}
	if !ok {
		return curated.Errorf("lock: %v", "file is locked by another process")
	}
	return nil
}

// Changed returns true if the file on disk has changed since it was last
// loaded or saved by the Store.
func (s *Store) Changed() bool {
	return stampFile(s.path) != s.stamp
}

// Load bindings from disk. A file that does not exist is not an error and
// results in an empty list.
//
// Bindings are returned in the numeric order of their index. Gaps in the
// numbering are closed. Malformed chord and action values are replaced by
// their defaults.
func (s *Store) Load() ([]*keybind.Binding, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.stamp = stamp{}
		return nil, nil
	}

	if err := s.acquire(true); err != nil {
		return nil, curated.Errorf("bindings: %v", err)
	}
	defer s.lock.Unlock()

	f, err := ini.LoadSources(loadOptions, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.stamp = stampFile(s.path)
			return nil, nil
		}
		return nil, curated.Errorf("bindings: %v", err)
	}

	s.stamp = stampFile(s.path)

	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, nil
	}

	return Decode(sec), nil
}

// Decode the bindings in an INI section.
func Decode(sec *ini.Section) []*keybind.Binding {
	type indexed struct {
		n      int
		preset string
	}

	var presets []indexed
	for _, k := range sec.Keys() {
		suffix, ok := strings.CutPrefix(k.Name(), presetKey)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		presets = append(presets, indexed{n: n, preset: k.String()})
	}

	slices.SortFunc(presets, func(a, b indexed) int {
		return a.n - b.n
	})

	value := func(prefix string, n int) string {
		k, err := sec.GetKey(fmt.Sprintf("%s%d", prefix, n))
		if err != nil {
			return ""
		}
		return k.String()
	}

	bindings := make([]*keybind.Binding, 0, len(presets))
	for _, p := range presets {
		bindings = append(bindings, &keybind.Binding{
			Preset: p.preset,
			Chord:  keybind.ParseChord(value(keybindKey, p.n)),
			Action: keybind.ParseAction(value(actionKey, p.n)),
		})
	}

	return bindings
}

// Encode bindings into an INI section. Any existing keys in the section are
// removed.
func Encode(sec *ini.Section, bindings []*keybind.Binding) error {
	for _, k := range sec.KeyStrings() {
		sec.DeleteKey(k)
	}

	for i, b := range bindings {
		if _, err := sec.NewKey(fmt.Sprintf("%s%d", presetKey, i), b.Preset); err != nil {
			return curated.Errorf("encode: %v", err)
		}
		if _, err := sec.NewKey(fmt.Sprintf("%s%d", keybindKey, i), b.Chord.Format()); err != nil {
			return curated.Errorf("encode: %v", err)
		}
		if _, err := sec.NewKey(fmt.Sprintf("%s%d", actionKey, i), strconv.Itoa(int(b.Action))); err != nil {
			return curated.Errorf("encode: %v", err)
		}
	}

	return nil
}

// Save bindings to disk. Sections in the file other than the bindings
// section are preserved.
func (s *Store) Save(bindings []*keybind.Binding) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return curated.Errorf("bindings: %v", err)
	}

	if err := s.acquire(false); err != nil {
		return curated.Errorf("bindings: %v", err)
	}
	defer s.lock.Unlock()

	f, err := ini.LoadSources(loadOptions, s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("bindings: %v", err)
		}
		f = ini.Empty(loadOptions)
	}

	if err := Encode(f.Section(Section), bindings); err != nil {
		return curated.Errorf("bindings: %v", err)
	}

	// write to a temporary file in the same directory and rename it over the
	// bindings file. a reader will see the old file or the new file but never
	// a partial file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), fmt.Sprintf(".%s.*", filepath.Base(s.path)))
	if err != nil {
		return curated.Errorf("bindings: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return curated.Errorf("bindings: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return curated.Errorf("bindings: %v", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return curated.Errorf("bindings: %v", err)
	}

	s.stamp = stampFile(s.path)

	return nil
}
