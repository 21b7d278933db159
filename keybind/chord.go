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
	"strconv"
	"strings"

	"github.com/jetsetilly/presetselector/curated"
)

// Modifiers is the held state of the three modifier keys.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Chord is a primary key and the modifier keys that must be held with it. The
// zero value is an unbound chord.
type Chord struct {
	Key KeyCode
	Modifiers
}

// NewChord creates a bound chord. It is an error for the primary key to be
// unbound or a modifier key.
func NewChord(key KeyCode, mod Modifiers) (Chord, error) {
	if key == KeyNone {
		return Chord{}, curated.Errorf("chord: %v", "no primary key")
	}
	if key.IsModifier() {
		return Chord{}, curated.Errorf("chord: %v", fmt.Sprintf("%s cannot be a primary key", key.Name()))
	}
	return Chord{Key: key, Modifiers: mod}, nil
}

// Bound returns true if the chord has a primary key.
func (c Chord) Bound() bool {
	return c.Key != KeyNone
}

// Matches returns true if the chord is bound, the pressed key is the primary
// key and the held modifiers are exactly those of the chord.
func (c Chord) Matches(pressed bool, held Modifiers) bool {
	return c.Bound() && pressed && c.Modifiers == held
}

// String returns the human readable name of the chord. For example:
//
//	Ctrl + Shift + F5
//
// An unbound chord returns the empty string.
func (c Chord) String() string {
	if !c.Bound() && c.Modifiers == (Modifiers{}) {
		return ""
	}
	s := strings.Builder{}
	if c.Ctrl {
		s.WriteString("Ctrl + ")
	}
	if c.Shift {
		s.WriteString("Shift + ")
	}
	if c.Alt {
		s.WriteString("Alt + ")
	}
	s.WriteString(c.Key.Name())
	return s.String()
}

func boolToUint(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Tuple returns the chord as the four unsigned integers used for storage:
// key, ctrl, shift, alt.
func (c Chord) Tuple() [4]uint32 {
	return [4]uint32{uint32(c.Key), boolToUint(c.Ctrl), boolToUint(c.Shift), boolToUint(c.Alt)}
}

// ChordFromTuple is the inverse of Tuple(). Any non-zero modifier value is
// considered to be held.
func ChordFromTuple(t [4]uint32) Chord {
	return Chord{
		Key: KeyCode(t[0]),
		Modifiers: Modifiers{
			Ctrl:  t[1] != 0,
			Shift: t[2] != 0,
			Alt:   t[3] != 0,
		},
	}
}

// Format returns the stored form of the chord. For example:
//
//	65,1,0,0
func (c Chord) Format() string {
	t := c.Tuple()
	return fmt.Sprintf("%d,%d,%d,%d", t[0], t[1], t[2], t[3])
}

// ParseChord converts the stored form of a chord to a Chord. Parsing is best
// effort: missing or unparsable fields are left at zero and fields beyond the
// fourth are ignored. A primary key that is a modifier key results in an
// unbound chord.
func ParseChord(s string) Chord {
	var t [4]uint32
	for i, f := range strings.Split(s, ",") {
		if i >= len(t) {
			break
		}
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			continue
		}
		t[i] = uint32(v)
	}

	c := ChordFromTuple(t)
	if c.Key.IsModifier() {
		return Chord{}
	}
	return c
}

// ParseChordName converts a human readable chord name, as returned by
// String(), to a Chord. Modifier names are followed by a plus sign, with
// optional spacing. The final part is the name of the primary key, which may
// itself contain a plus sign (eg. "Numpad +").
func ParseChordName(s string) (Chord, error) {
	var mod Modifiers

	rest := strings.TrimSpace(s)
	for done := false; !done; {
		i := strings.Index(rest, "+")
		if i <= 0 {
			break
		}

		switch strings.ToLower(strings.TrimSpace(rest[:i])) {
		case "ctrl", "control":
			mod.Ctrl = true
		case "shift":
			mod.Shift = true
		case "alt":
			mod.Alt = true
		default:
			done = true
			continue
		}

		rest = strings.TrimSpace(rest[i+1:])
	}

	key, ok := LookupKey(rest)
	if !ok {
		return Chord{}, curated.Errorf("chord: %v", fmt.Sprintf("unknown key %q", rest))
	}

	return NewChord(key, mod)
}
