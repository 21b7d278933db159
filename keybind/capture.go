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

// CaptureChord is the logic of the chord editor. It is called every frame
// that the chord editor has input focus with the most recent key press
// reported by the host and the modifier keys currently held.
//
// A lastKey of KeyNone means that no key has been pressed and the current
// chord is returned unchanged. The backspace key clears the chord. Modifier
// keys on their own are ignored so that they can be held while the primary
// key is pressed.
//
// The second return value is true if the returned chord is different to
// the current chord.
func CaptureChord(current Chord, lastKey KeyCode, held Modifiers) (Chord, bool) {
	var c Chord

	switch {
	case lastKey == KeyNone:
		return current, false
	case lastKey == KeyBackspace:
		c = Chord{}
	case lastKey.IsModifier():
		return current, false
	default:
		c = Chord{Key: lastKey, Modifiers: held}
	}

	return c, c != current
}
