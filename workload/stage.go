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
	"fmt"
)

// Environment is the part of the addon that stages act upon.
type Environment interface {
	SetCurrentPreset(preset string)
	CurrentFrame() uint32
	LastEffectsRenderFrame() uint32

	// capture a screenshot and save it to disk. errors are dealt with
	// entirely by the implementation
	CaptureAndSave()
}

// Stage is a single step in a workload. Start() is called only once for a
// stage. Complete() may be called any number of times after that and must not
// have side effects.
type Stage interface {
	Start(env Environment)
	Complete(env Environment) bool
	String() string
}

// SwitchPreset changes the active preset and waits for the effects for the
// new preset to be rendered.
type SwitchPreset struct {
	Preset string

	// number of frames to wait for the effects of the new preset to be
	// rendered. zero means no limit
	Timeout uint32

	renderFrame uint32
	startFrame  uint32
}

func (s *SwitchPreset) Start(env Environment) {
	s.renderFrame = env.LastEffectsRenderFrame()
	s.startFrame = env.CurrentFrame()
	env.SetCurrentPreset(s.Preset)
}

func (s *SwitchPreset) Complete(env Environment) bool {
	return s.Rendered(env) || s.TimedOut(env)
}

// Rendered returns true if effects have been rendered since the stage was
// started.
func (s *SwitchPreset) Rendered(env Environment) bool {
	return env.LastEffectsRenderFrame() > s.renderFrame
}

// TimedOut returns true if the stage has a timeout and it has been reached
// without effects being rendered.
func (s *SwitchPreset) TimedOut(env Environment) bool {
	if s.Timeout == 0 || s.Rendered(env) {
		return false
	}
	return env.CurrentFrame()-s.startFrame >= s.Timeout
}

func (s *SwitchPreset) String() string {
	return fmt.Sprintf("switch preset: %s", s.Preset)
}

// WaitFrames waits for the number of frames to have passed since the stage
// was started.
type WaitFrames struct {
	Frames uint32

	startFrame uint32
}

func (s *WaitFrames) Start(env Environment) {
	s.startFrame = env.CurrentFrame()
}

func (s *WaitFrames) Complete(env Environment) bool {
	return env.CurrentFrame()-s.startFrame >= s.Frames
}

func (s *WaitFrames) String() string {
	return fmt.Sprintf("wait frames: %d", s.Frames)
}

// Capture takes a screenshot. It does all its work in Start() and is complete
// immediately.
type Capture struct{}

func (s *Capture) Start(env Environment) {
	env.CaptureAndSave()
}

func (s *Capture) Complete(_ Environment) bool {
	return true
}

func (s *Capture) String() string {
	return "capture"
}
