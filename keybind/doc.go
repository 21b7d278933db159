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

// Package keybind is the registry of bindings between preset files and
// keyboard chords.
//
// A Chord is a primary key and the state of the three modifier keys (ctrl,
// shift and alt). Key codes are the host's virtual-key codes. A primary key
// of zero means that the chord is unbound. The modifier keys themselves can
// never be the primary key.
//
// A Binding associates a preset path with a Chord and an Action. The action
// is either to switch to the preset or to take a screenshot of the preset.
//
// Bindings are kept in order in a Registry. Bindings are removed from the
// registry in two steps, first by marking the binding with MarkRemove() and
// then with Commit(). This allows the removal to be requested while the list
// is being iterated over, for example while drawing the list of bindings.
//
// The CaptureChord() function contains the logic of the chord editor: the
// widget that records a chord when the user presses a key.
package keybind
