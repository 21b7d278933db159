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

// Package addon connects the preset selector to a host program. The Addon
// type holds all state and is driven by the host calling OnOverlay() once per
// frame and OnEffectsRendered() whenever the effects of the current preset
// have been rendered.
//
// Each overlay tick the screenshot scheduler is polled. If no screenshot is
// in progress the bindings are checked against the keyboard. A binding either
// switches to its preset immediately or queues a screenshot of its preset.
//
// The editor functions (Add(), SetPreset(), CaptureChord(), etc.) are for the
// overlay user interface. The bindings are saved to disk whenever they are
// changed by an editor function.
package addon
