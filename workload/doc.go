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

// Package workload runs screenshot workloads over several frames without
// blocking the frame that the work started on.
//
// A workload is a short sequence of stages: switch to the target preset,
// wait a few frames, capture the screen and then switch back to the original
// preset. The stages of every queued workload are kept in a single FIFO and
// the Scheduler's Poll() function is called once per frame. The stage at the
// front of the queue is started the first time it is seen and is removed from
// the queue once it reports that it is complete. A stage that is complete
// immediately does not cost a frame and the next stage is started in the same
// call to Poll().
//
// Switching preset is complete once the host has reported that effects have
// been rendered on a frame later than the frame on which the switch was made.
// By default there is no limit on how long this takes. SetSwitchTimeout()
// can be used to limit the wait to a number of frames.
package workload
