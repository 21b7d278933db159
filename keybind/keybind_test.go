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

package keybind_test

import (
	"testing"

	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/test"
)

func TestKeyNames(t *testing.T) {
	test.ExpectEquality(t, keybind.KeyCode(0x41).Name(), "A")
	test.ExpectEquality(t, keybind.KeyCode(0x70).Name(), "F1")
	test.ExpectEquality(t, keybind.KeyBackspace.Name(), "Backspace")
	test.ExpectEquality(t, keybind.KeyCode(0xdc).Name(), "OEM \\")
	test.ExpectEquality(t, keybind.KeyCode(0xfe).Name(), "OEM Clear")
	test.ExpectEquality(t, keybind.KeyCode(0x07).Name(), "")
	test.ExpectEquality(t, keybind.KeyCode(256).Name(), "")

	k, ok := keybind.LookupKey("f5")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keybind.KeyCode(0x74))

	_, ok = keybind.LookupKey("")
	test.ExpectFailure(t, ok)
	_, ok = keybind.LookupKey("not a key")
	test.ExpectFailure(t, ok)
}

func TestModifierKeys(t *testing.T) {
	test.ExpectSuccess(t, keybind.KeyShift.IsModifier())
	test.ExpectSuccess(t, keybind.KeyControl.IsModifier())
	test.ExpectSuccess(t, keybind.KeyAlt.IsModifier())
	test.ExpectFailure(t, keybind.KeyCode(0x41).IsModifier())
	test.ExpectFailure(t, keybind.KeyCode(0x13).IsModifier())
}

func TestNewChord(t *testing.T) {
	c, err := keybind.NewChord(0x41, keybind.Modifiers{Ctrl: true})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Bound())
	test.ExpectEquality(t, c.String(), "Ctrl + A")

	_, err = keybind.NewChord(keybind.KeyNone, keybind.Modifiers{})
	test.ExpectFailure(t, err)

	_, err = keybind.NewChord(keybind.KeyControl, keybind.Modifiers{Ctrl: true})
	test.ExpectFailure(t, err)
}

func TestChordString(t *testing.T) {
	c := keybind.Chord{Key: 0x74, Modifiers: keybind.Modifiers{Ctrl: true, Shift: true, Alt: true}}
	test.ExpectEquality(t, c.String(), "Ctrl + Shift + Alt + F5")

	c = keybind.Chord{Key: 0x74}
	test.ExpectEquality(t, c.String(), "F5")

	test.ExpectEquality(t, keybind.Chord{}.String(), "")
}

func TestChordStorage(t *testing.T) {
	c := keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Ctrl: true}}
	test.ExpectEquality(t, c.Format(), "65,1,0,0")
	test.ExpectEquality(t, c.Tuple(), [4]uint32{0x41, 1, 0, 0})
	test.ExpectEquality(t, keybind.ChordFromTuple(c.Tuple()), c)
	test.ExpectEquality(t, keybind.ParseChord("65,1,0,0"), c)
	test.ExpectEquality(t, keybind.ParseChord(" 65 , 1 ,0, 0"), c)
}

func TestParseChordMalformed(t *testing.T) {
	// missing fields are left at zero
	test.ExpectEquality(t, keybind.ParseChord("65"), keybind.Chord{Key: 0x41})
	test.ExpectEquality(t, keybind.ParseChord(""), keybind.Chord{})

	// unparsable fields are left at zero but other fields are still used
	test.ExpectEquality(t, keybind.ParseChord("65,x,1,0"),
		keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Shift: true}})
	test.ExpectEquality(t, keybind.ParseChord("foo,1,1,1"),
		keybind.Chord{Modifiers: keybind.Modifiers{Ctrl: true, Shift: true, Alt: true}})

	// extra fields are ignored
	test.ExpectEquality(t, keybind.ParseChord("65,0,0,1,9,9"),
		keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Alt: true}})

	// negative numbers cannot be parsed
	test.ExpectEquality(t, keybind.ParseChord("-1,0,0,0"), keybind.Chord{})

	// a modifier as the primary key is not allowed
	test.ExpectEquality(t, keybind.ParseChord("17,1,0,0"), keybind.Chord{})
}

func TestParseChordName(t *testing.T) {
	c, err := keybind.ParseChordName("Ctrl + Shift + F5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, keybind.Chord{Key: 0x74, Modifiers: keybind.Modifiers{Ctrl: true, Shift: true}})

	c, err = keybind.ParseChordName("alt+a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Alt: true}})

	c, err = keybind.ParseChordName("Ctrl + Numpad +")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, keybind.Chord{Key: 0x6b, Modifiers: keybind.Modifiers{Ctrl: true}})

	// string representation and parsing agree
	c, err = keybind.ParseChordName(c.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.String(), "Ctrl + Numpad +")

	_, err = keybind.ParseChordName("Ctrl + Shift")
	test.ExpectFailure(t, err)
	_, err = keybind.ParseChordName("Ctrl + Foo")
	test.ExpectFailure(t, err)
}

func TestChordMatches(t *testing.T) {
	c := keybind.Chord{Key: 0x41}

	test.ExpectSuccess(t, c.Matches(true, keybind.Modifiers{}))
	test.ExpectFailure(t, c.Matches(false, keybind.Modifiers{}))

	// modifier flags must match exactly
	test.ExpectFailure(t, c.Matches(true, keybind.Modifiers{Ctrl: true}))

	c = keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Ctrl: true}}
	test.ExpectSuccess(t, c.Matches(true, keybind.Modifiers{Ctrl: true}))
	test.ExpectFailure(t, c.Matches(true, keybind.Modifiers{}))
	test.ExpectFailure(t, c.Matches(true, keybind.Modifiers{Ctrl: true, Shift: true}))

	// an unbound chord never matches
	test.ExpectFailure(t, keybind.Chord{}.Matches(true, keybind.Modifiers{}))
}

func TestCaptureChord(t *testing.T) {
	current := keybind.Chord{Key: 0x41}

	// no key pressed
	c, changed := keybind.CaptureChord(current, keybind.KeyNone, keybind.Modifiers{Ctrl: true})
	test.ExpectFailure(t, changed)
	test.ExpectEquality(t, c, current)

	// modifier key pressed on its own
	c, changed = keybind.CaptureChord(current, keybind.KeyControl, keybind.Modifiers{Ctrl: true})
	test.ExpectFailure(t, changed)
	test.ExpectEquality(t, c, current)

	// primary key with modifiers held
	c, changed = keybind.CaptureChord(current, 0x42, keybind.Modifiers{Ctrl: true, Alt: true})
	test.ExpectSuccess(t, changed)
	test.ExpectEquality(t, c, keybind.Chord{Key: 0x42, Modifiers: keybind.Modifiers{Ctrl: true, Alt: true}})

	// same chord again is not a change
	_, changed = keybind.CaptureChord(c, 0x42, keybind.Modifiers{Ctrl: true, Alt: true})
	test.ExpectFailure(t, changed)

	// backspace clears the chord regardless of modifiers
	c, changed = keybind.CaptureChord(c, keybind.KeyBackspace, keybind.Modifiers{Shift: true})
	test.ExpectSuccess(t, changed)
	test.ExpectEquality(t, c, keybind.Chord{})

	// clearing an unbound chord is not a change
	_, changed = keybind.CaptureChord(c, keybind.KeyBackspace, keybind.Modifiers{})
	test.ExpectFailure(t, changed)
}

func TestParseAction(t *testing.T) {
	test.ExpectEquality(t, keybind.ParseAction("0"), keybind.SwitchPreset)
	test.ExpectEquality(t, keybind.ParseAction("1"), keybind.TakeScreenshot)
	test.ExpectEquality(t, keybind.ParseAction(""), keybind.SwitchPreset)
	test.ExpectEquality(t, keybind.ParseAction("x"), keybind.SwitchPreset)
	test.ExpectEquality(t, keybind.ParseAction("7"), keybind.SwitchPreset)
	test.ExpectEquality(t, keybind.ParseAction(" 1 "), keybind.TakeScreenshot)
}

func TestPresetDisplay(t *testing.T) {
	test.ExpectEquality(t, keybind.PresetDisplay("", 40), "None")
	test.ExpectEquality(t, keybind.PresetDisplay("A.ini", 40), "A.ini")
	test.ExpectEquality(t, keybind.PresetDisplay("presets/long/path/B.ini", 10), "...path/B.ini")
	test.ExpectEquality(t, keybind.PresetDisplay("presets/long/path/B.ini", 0), "presets/long/path/B.ini")
}

func TestBinding(t *testing.T) {
	b := &keybind.Binding{}
	test.ExpectFailure(t, b.Usable())
	test.ExpectEquality(t, b.PresetDir("presets/current.ini"), "presets")

	b.Preset = "other/X.ini"
	test.ExpectFailure(t, b.Usable())
	test.ExpectEquality(t, b.PresetDir("presets/current.ini"), "other")

	b.Chord = keybind.Chord{Key: 0x41, Modifiers: keybind.Modifiers{Ctrl: true}}
	test.ExpectSuccess(t, b.Usable())
	test.ExpectEquality(t, b.String(), "other/X.ini [Ctrl + A] Switch preset")
}

func TestRegistry(t *testing.T) {
	r := keybind.NewRegistry()
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectSuccess(t, r.CanAdd())

	b := r.Add()
	test.DemandSuccess(t, b != nil)
	test.ExpectEquality(t, r.Len(), 1)

	// cannot add another binding until the most recent binding has a preset
	test.ExpectFailure(t, r.CanAdd())
	test.ExpectSuccess(t, r.Add() == nil)

	b.Preset = "A.ini"
	test.ExpectSuccess(t, r.CanAdd())
	c := r.Add()
	c.Preset = "B.ini"
	d := r.Add()
	d.Preset = "C.ini"
	test.ExpectEquality(t, r.Len(), 3)

	test.ExpectSuccess(t, r.Get(3) == nil)
	test.ExpectSuccess(t, r.Get(-1) == nil)
	test.ExpectEquality(t, r.Get(1).Preset, "B.ini")

	// nothing marked for removal
	test.ExpectFailure(t, r.Commit())
	test.ExpectEquality(t, r.Len(), 3)

	test.ExpectSuccess(t, r.MarkRemove(1))
	test.ExpectFailure(t, r.MarkRemove(5))

	// marked binding is still in the registry until the commit
	test.ExpectEquality(t, r.Len(), 3)
	test.ExpectSuccess(t, r.Commit())
	test.DemandEquality(t, r.Len(), 2)
	test.ExpectEquality(t, r.Get(0).Preset, "A.ini")
	test.ExpectEquality(t, r.Get(1).Preset, "C.ini")

	// a copy of the list does not affect the registry
	l := r.Bindings()
	l[0] = nil
	test.ExpectEquality(t, r.Get(0).Preset, "A.ini")

	r.Replace([]*keybind.Binding{{Preset: "X.ini"}, nil})
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Get(0).Preset, "X.ini")
}

func TestRegistryEditOpen(t *testing.T) {
	r := keybind.NewRegistry(&keybind.Binding{Preset: "A.ini"}, &keybind.Binding{Preset: "B.ini"})
	test.ExpectFailure(t, r.AnyEditOpen())
	r.Get(1).EditOpen = true
	test.ExpectSuccess(t, r.AnyEditOpen())
}
