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
	"strings"

	"github.com/jetsetilly/presetselector/prefs"
)

// environment for the screenshot workloads
type environment struct {
	a *Addon
}

func (env environment) SetCurrentPreset(preset string) {
	env.a.host.SetCurrentPreset(preset)
}

func (env environment) CurrentFrame() uint32 {
	return env.a.clock.CurrentFrame()
}

func (env environment) LastEffectsRenderFrame() uint32 {
	return env.a.clock.LastEffectsRenderFrame()
}

func (env environment) CaptureAndSave() {
	env.a.capturer.CaptureAndSave()
}

// location of screenshots. the savePath preference takes priority over the
// location configured by the host
type location struct {
	host     Host
	savePath *prefs.String
}

func (l location) BasePath() string {
	return l.host.BasePath()
}

func (l location) ScreenshotPath() string {
	if p := strings.TrimSpace(l.savePath.String()); p != "" {
		return p
	}
	return l.host.ConfigValue(screenshotSection, screenshotKey)
}
