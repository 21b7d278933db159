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

package addon

import (
	"github.com/jetsetilly/presetselector/dispatch"
	"github.com/jetsetilly/presetselector/keybind"
)

// The functions in this file are called by the overlay user interface. The
// index argument is the index of the binding in the registry. Functions
// return false if the index is out of range. Changes that alter what is
// stored on disk cause the bindings file to be saved.

// Add a new empty binding. Returns the index of the new binding or -1 if a
// binding cannot be added. A binding cannot be added if the most recently
// added binding has no preset.
func (a *Addon) Add() int {
	if a.registry.Add() == nil {
		return -1
	}
	return a.registry.Len() - 1
}

// CanAdd returns true if Add() will succeed.
func (a *Addon) CanAdd() bool {
	return a.registry.CanAdd()
}

// SetPreset sets the preset for the binding. This is the result of a
// selection in the file picker.
func (a *Addon) SetPreset(idx int, preset string) bool {
	b := a.registry.Get(idx)
	if b == nil {
		return false
	}
	b.Preset = preset
	_ = a.Save()
	return true
}

// SetAction changes the action of the binding.
func (a *Addon) SetAction(idx int, action keybind.Action) bool {
	b := a.registry.Get(idx)
	if b == nil || !action.Valid() {
		return false
	}
	if b.Action != action {
		b.Action = action
		_ = a.Save()
	}
	return true
}

// OpenChordEdit opens the chord editor for the binding. The editor can only be
// opened for a binding that has a preset.
func (a *Addon) OpenChordEdit(idx int) bool {
	b := a.registry.Get(idx)
	if b == nil || b.Preset == "" {
		return false
	}
	b.EditOpen = true
	return true
}

// CloseChordEdit closes the chord editor for the binding.
func (a *Addon) CloseChordEdit(idx int) bool {
	b := a.registry.Get(idx)
	if b == nil {
		return false
	}
	b.EditOpen = false
	return true
}

// CaptureChord should be called every frame for every binding with an open
// chord editor. The focused argument says whether the editor has keyboard
// focus. While any editor has focus no chord will be acted upon.
//
// With focus, the last key pressed becomes the primary key of the chord with
// the currently held modifiers. Returns true if the chord has changed.
func (a *Addon) CaptureChord(idx int, focused bool) bool {
	b := a.registry.Get(idx)
	if b == nil || !b.EditOpen {
		return false
	}

	a.editFocused = a.editFocused || focused
	if !focused {
		return false
	}

	c, changed := keybind.CaptureChord(b.Chord, a.host.LastKeyPressed(), dispatch.Held(a.host))
	if !changed {
		return false
	}

	b.Chord = c
	_ = a.Save()
	return true
}

// MarkRemove marks the binding for removal. The binding is removed by the next
// call to Commit(), which happens at the end of every overlay tick.
func (a *Addon) MarkRemove(idx int) bool {
	return a.registry.MarkRemove(idx)
}

// Commit removes all bindings that have been marked for removal. The
// bindings file is saved if any binding was removed.
func (a *Addon) Commit() bool {
	if !a.registry.Commit() {
		return false
	}
	_ = a.Save()
	return true
}

// BrowseStart returns the directory in which the file picker should start
// when choosing a preset for the binding.
func (a *Addon) BrowseStart(idx int) (string, bool) {
	b := a.registry.Get(idx)
	if b == nil {
		return "", false
	}
	return b.PresetDir(a.host.CurrentPreset()), true
}

// PresetDisplay returns the preset of the binding in a form suitable for the
// overlay.
func (a *Addon) PresetDisplay(idx int) string {
	b := a.registry.Get(idx)
	if b == nil {
		return ""
	}
	return keybind.PresetDisplay(b.Preset, a.Prefs.PresetDisplayLength.Get().(int))
}

// ChordButton returns the label of the button that opens the chord editor.
func (a *Addon) ChordButton(idx int) string {
	b := a.registry.Get(idx)
	if b == nil {
		return ""
	}
	if b.Chord.Bound() {
		return "Change"
	}
	return "Keybind"
}
