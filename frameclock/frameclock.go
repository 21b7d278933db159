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

// Package frameclock records the host's frame counters. The host event layer
// sets the counters and the stages of a screenshot workload read them.
//
// No validation of the values is performed. The counters are supplied by the
// host and are expected to be monotonic.
package frameclock

// Clock holds the current frame number and the most recent frame on which the
// effects of the current preset were rendered.
//
// The zero value is ready to use. Clock is not safe for concurrent use. All
// access should happen on the host's callback thread.
type Clock struct {
	current      uint32
	effectsFrame uint32
}

// NotifyFrame sets the current frame number. Called once per overlay tick.
func (c *Clock) NotifyFrame(n uint32) {
	c.current = n
}

// NotifyEffectsRendered sets the frame number on which effects were most
// recently rendered.
func (c *Clock) NotifyEffectsRendered(n uint32) {
	c.effectsFrame = n
}

// CurrentFrame returns the most recent value given to NotifyFrame().
func (c *Clock) CurrentFrame() uint32 {
	return c.current
}

// LastEffectsRenderFrame returns the most recent value given to
// NotifyEffectsRendered().
func (c *Clock) LastEffectsRenderFrame() uint32 {
	return c.effectsFrame
}
