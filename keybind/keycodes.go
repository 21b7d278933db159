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

import "strings"

// KeyCode is a virtual-key code as reported by the host.
type KeyCode uint32

// List of key codes that have special meaning to the preset selector. Codes
// are virtual-key codes.
const (
	KeyNone      KeyCode = 0x00
	KeyBackspace KeyCode = 0x08
	KeyShift     KeyCode = 0x10
	KeyControl   KeyCode = 0x11
	KeyAlt       KeyCode = 0x12
)

// IsModifier returns true if the key code is one of the modifier keys: shift,
// control or alt. Modifier keys cannot be the primary key of a Chord.
func (k KeyCode) IsModifier() bool {
	return k == KeyShift || k == KeyControl || k == KeyAlt
}

// Name returns the human readable name of the key code. Codes with no name
// return the empty string.
func (k KeyCode) Name() string {
	if int(k) >= len(keyNames) {
		return ""
	}
	return keyNames[k]
}

func (k KeyCode) String() string {
	return k.Name()
}

// LookupKey returns the key code for the human readable name. The search is
// case insensitive. The second return value is false if there is no key code
// with that name.
func LookupKey(name string) (KeyCode, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyNone, false
	}
	for i, n := range keyNames {
		if strings.EqualFold(n, name) {
			return KeyCode(i), true
		}
	}
	return KeyNone, false
}
