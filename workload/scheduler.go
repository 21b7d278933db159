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

package workload

import (
	"github.com/google/uuid"

	"github.com/jetsetilly/presetselector/logger"
)

// DefaultWaitFrames is the number of frames waited between the effects of the
// target preset being rendered and the screenshot being taken.
const DefaultWaitFrames = 5

type entry struct {
	id      string
	stage   Stage
	started bool
}

// Scheduler runs queued workloads one stage at a time. It is driven by
// calling Poll() once per frame.
type Scheduler struct {
	env   Environment
	queue []entry

	waitFrames    uint32
	switchTimeout uint32
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(env Environment) *Scheduler {
	return &Scheduler{
		env:        env,
		waitFrames: DefaultWaitFrames,
	}
}

// SetWaitFrames changes the number of frames waited before a screenshot is
// taken. Affects only workloads enqueued after the call.
func (sch *Scheduler) SetWaitFrames(frames uint32) {
	sch.waitFrames = frames
}

// SetSwitchTimeout changes the maximum number of frames a preset switch will
// wait for the effects to be rendered. A value of zero means no limit.
// Affects only workloads enqueued after the call.
func (sch *Scheduler) SetSwitchTimeout(frames uint32) {
	sch.switchTimeout = frames
}

// Enqueue a screenshot workload. The target preset will be switched to and a
// screenshot taken before the original preset is restored. Returns the
// identifier of the workload used in log entries.
func (sch *Scheduler) Enqueue(original string, target string) string {
	id := uuid.NewString()

	stages := []Stage{
		&SwitchPreset{Preset: target, Timeout: sch.switchTimeout},
		&WaitFrames{Frames: sch.waitFrames},
		&Capture{},
		&SwitchPreset{Preset: original, Timeout: sch.switchTimeout},
	}
	for _, s := range stages {
		sch.queue = append(sch.queue, entry{id: id, stage: s})
	}

	logger.Logf(logger.Allow, "workload", "%s: queued screenshot of %s", id, target)

	return id
}

// Pending returns the number of stages waiting to be started or completed.
func (sch *Scheduler) Pending() int {
	return len(sch.queue)
}

// Busy returns true if there are stages in the queue.
func (sch *Scheduler) Busy() bool {
	return len(sch.queue) > 0
}

// Poll should be called once per frame. Returns false if there was nothing
// to do. Stages that complete immediately do not wait for the next call to
// Poll() before the next stage is started.
func (sch *Scheduler) Poll() bool {
	if len(sch.queue) == 0 {
		return false
	}

	for len(sch.queue) > 0 {
		e := &sch.queue[0]

		if !e.started {
			e.started = true
			e.stage.Start(sch.env)
		}

		if !e.stage.Complete(sch.env) {
			break
		}

		if sw, ok := e.stage.(*SwitchPreset); ok && sw.TimedOut(sch.env) {
			logger.Logf(logger.Allow, "workload", "%s: timed out waiting for effects: %s", e.id, sw.Preset)
		}

		id := e.id
		sch.queue[0] = entry{}
		sch.queue = sch.queue[1:]

		if len(sch.queue) == 0 || sch.queue[0].id != id {
			logger.Logf(logger.Allow, "workload", "%s: finished", id)
		}
	}

	return true
}
