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

// Package hostsim is a simulation of the host program of the addon. It keeps
// the current preset, keyboard state, configuration and log in memory and
// produces a synthetic framebuffer that is coloured according to the current
// preset.
//
// The effects of a new preset are rendered a configurable number of frames
// after the preset is changed. Rendering can also be stopped entirely, which
// is useful for testing what happens when the host never reports the
// effects as rendered.
//
// The Keyboard type reads key presses from a terminal in raw mode. Key presses
// from a terminal do not have a release event so they are applied to the
// Host with Tap(), which holds the key and its modifiers for one frame only.
package hostsim
