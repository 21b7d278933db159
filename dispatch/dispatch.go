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

package dispatch

import (
	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/logger"
)

// Input reports the state of the keyboard for the current tick.
type Input interface {
	// whether the key is currently held down
	IsKeyDown(key keybind.KeyCode) bool

	// whether the key was pressed during this tick
	IsKeyPressed(key keybind.KeyCode) bool
}

// Presets allows the active preset to be queried and changed.
type Presets interface {
	CurrentPreset() string
	SetCurrentPreset(preset string)
}

// Queue accepts screenshot workloads. Implemented by workload.Scheduler.
type Queue interface {
	Enqueue(original string, target string) string
}

// Dispatcher checks the chords of a registry against the keyboard state and
// performs the bound actions.
type Dispatcher struct {
	input    Input
	presets  Presets
	queue    Queue
	registry *keybind.Registry
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(input Input, presets Presets, queue Queue, registry *keybind.Registry) *Dispatcher {
	return &Dispatcher{
		input:    input,
		presets:  presets,
		queue:    queue,
		registry: registry,
	}
}

// Held samples the state of the modifier keys.
func Held(input Input) keybind.Modifiers {
	return keybind.Modifiers{
		Ctrl:  input.IsKeyDown(keybind.KeyControl),
		Shift: input.IsKeyDown(keybind.KeyShift),
		Alt:   input.IsKeyDown(keybind.KeyAlt),
	}
}

// Dispatch should be called once per tick when no workload is in progress.
// If suppressed is true then nothing happens. This is the case when the
// chord editor has keyboard focus. Every matching binding is acted upon in
// registry order. Returns the number of bindings that were acted upon.
func (d *Dispatcher) Dispatch(suppressed bool) int {
	if suppressed {
		return 0
	}

	held := Held(d.input)

	var fired int
	for _, b := range d.registry.Bindings() {
		if !b.Usable() {
			continue
		}
		if !b.Chord.Matches(d.input.IsKeyPressed(b.Chord.Key), held) {
			continue
		}

		fired++

		switch b.Action {
		case keybind.TakeScreenshot:
			d.queue.Enqueue(d.presets.CurrentPreset(), b.Preset)
		default:
			logger.Logf(logger.Allow, "preset selector", "switching to %s", b.Preset)
			d.presets.SetCurrentPreset(b.Preset)
		}
	}

	return fired
}
