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
	"path/filepath"
	"strings"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/prefs"
	"github.com/jetsetilly/presetselector/workload"
)

// Preferences that affect the behaviour of the addon. Stored in a prefs file
// alongside the bindings file.
type Preferences struct {
	dsk *prefs.Disk

	// number of frames to wait after the target preset has been rendered and
	// before the screenshot is taken
	WaitFrames *prefs.Int

	// number of frames to wait for the effects of a new preset to be
	// rendered. zero means wait forever
	SwitchTimeout *prefs.Int

	// maximum number of characters of a preset path shown in the overlay
	PresetDisplayLength *prefs.Int

	// where screenshots are saved. an empty value means the location
	// configured by the host
	SavePath *prefs.String

	// reload the bindings file when it is changed by another process
	AutoReload *prefs.Bool
}

// PrefsPath returns the path of the prefs file that accompanies the bindings
// file.
func PrefsPath(bindingsFile string) string {
	return strings.TrimSuffix(bindingsFile, filepath.Ext(bindingsFile)) + ".prefs"
}

func newPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		WaitFrames:          prefs.NewInt(workload.DefaultWaitFrames),
		SwitchTimeout:       prefs.NewInt(0),
		PresetDisplayLength: prefs.NewInt(keybind.DefaultPresetDisplayLength),
		SavePath:            prefs.NewString(""),
		AutoReload:          prefs.NewBool(true),
	}

	p.WaitFrames.SetRange(0, 600)
	p.SwitchTimeout.SetRange(0, 36000)
	p.PresetDisplayLength.SetRange(8, 256)

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("screenshot.waitFrames", p.WaitFrames)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("screenshot.switchTimeout", p.SwitchTimeout)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("overlay.presetDisplayLength", p.PresetDisplayLength)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("screenshot.savePath", p.SavePath)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("bindings.autoReload", p.AutoReload)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Reset all preferences to their default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

func (p *Preferences) String() string {
	return p.dsk.Path()
}
