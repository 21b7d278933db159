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

package keybind

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Action is what happens when the chord of a Binding is pressed.
type Action int

// List of valid Action values. The numeric values are used in the stored
// form of the keybinding list and must not change.
const (
	SwitchPreset   Action = 0
	TakeScreenshot Action = 1
)

// Actions lists every valid Action in display order.
var Actions = []Action{SwitchPreset, TakeScreenshot}

func (a Action) String() string {
	switch a {
	case SwitchPreset:
		return "Switch preset"
	case TakeScreenshot:
		return "Take screenshot"
	}
	return fmt.Sprintf("unknown action (%d)", int(a))
}

// Valid returns true if the Action is one of the listed actions.
func (a Action) Valid() bool {
	return a == SwitchPreset || a == TakeScreenshot
}

// ParseAction converts the stored form of an action to an Action. An empty,
// unparsable or unknown value is the SwitchPreset action.
func ParseAction(s string) Action {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return SwitchPreset
	}
	a := Action(v)
	if !a.Valid() {
		return SwitchPreset
	}
	return a
}

// Binding of a preset file to a chord and an action.
type Binding struct {
	// path to the preset file. may be empty if the preset has not been chosen
	// yet
	Preset string

	Chord  Chord
	Action Action

	// whether the chord editor is open for this binding. this is not stored
	EditOpen bool

	// binding will be removed from the registry on the next Commit()
	Remove bool
}

// Usable returns true if the binding has a preset and a bound chord.
func (b *Binding) Usable() bool {
	return b.Preset != "" && b.Chord.Bound()
}

func (b *Binding) String() string {
	chord := b.Chord.String()
	if chord == "" {
		chord = "unbound"
	}
	return fmt.Sprintf("%s [%s] %s", PresetDisplay(b.Preset, DefaultPresetDisplayLength), chord, b.Action)
}

// DefaultPresetDisplayLength is the default maximum number of characters used
// by PresetDisplay().
const DefaultPresetDisplayLength = 40

// PresetDisplay returns a string suitable for displaying a preset path in a
// limited space. Paths longer than max characters are cropped from the left
// and prefixed with an ellipsis. An empty path is displayed as "None".
func PresetDisplay(preset string, max int) string {
	if preset == "" {
		return "None"
	}
	if max > 0 && len(preset) > max {
		return fmt.Sprintf("...%s", preset[len(preset)-max:])
	}
	return preset
}

// PresetDir returns the directory a file picker should start in when choosing
// a preset for the binding. If the binding has no preset the directory of the
// current preset is used.
func (b *Binding) PresetDir(currentPreset string) string {
	if b.Preset != "" {
		return filepath.Dir(b.Preset)
	}
	return filepath.Dir(currentPreset)
}
