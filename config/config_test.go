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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/presetselector/config"
	"github.com/jetsetilly/presetselector/test"
)

func write(t *testing.T, content string) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "presetsel.toml")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0o644))
	return pth
}

func TestMissingFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "missing.toml")
	cfg, used, err := config.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, used, pth)

	def := config.Default()
	test.ExpectEquality(t, cfg.Host.FrameRate, def.Host.FrameRate)
	test.ExpectEquality(t, cfg.Host.BasePath, def.Host.BasePath)
	test.ExpectEquality(t, cfg.Addon.BindingsFile, def.Addon.BindingsFile)
	test.ExpectEquality(t, cfg.Addon.Watch, true)
}

func TestLoad(t *testing.T) {
	pth := write(t, `
[host]
base_path = "/base"
screenshot_path = "/shots"
presets = ["a.ini", " ", "b.ini"]
frame_rate = 30
render_delay = 0

[addon]
bindings_file = "/bindings/keys.ini"
watch = false
`)

	cfg, _, err := config.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Host.BasePath, "/base")
	test.ExpectEquality(t, cfg.Host.ScreenshotPath, "/shots")
	test.DemandEquality(t, len(cfg.Host.Presets), 2)
	test.ExpectEquality(t, cfg.Host.Presets[1], "b.ini")
	test.ExpectEquality(t, cfg.Host.FrameRate, 30)
	test.ExpectEquality(t, cfg.Host.RenderDelay, 0)
	test.ExpectEquality(t, cfg.Host.Width, 320)
	test.ExpectEquality(t, cfg.Addon.BindingsFile, "/bindings/keys.ini")
	test.ExpectEquality(t, cfg.Addon.Watch, false)

	test.ExpectEquality(t, cfg.Preset("a.ini"), filepath.Join("/base", "a.ini"))
	test.ExpectEquality(t, cfg.Preset("/abs/a.ini"), "/abs/a.ini")
}

func TestDefaultsForEmptyValues(t *testing.T) {
	pth := write(t, `
[host]
presets = []
`)
	cfg, _, err := config.Load(pth)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cfg.Host.Presets), 1)
	test.ExpectEquality(t, cfg.Host.Presets[0], "default.ini")
}

func TestInvalid(t *testing.T) {
	_, _, err := config.Load(write(t, "[host]\nframe_rate = 0\n"))
	test.ExpectFailure(t, err)
	_, _, err = config.Load(write(t, "[host]\nrender_delay = -1\n"))
	test.ExpectFailure(t, err)
	_, _, err = config.Load(write(t, "[host]\nwidth = 0\n"))
	test.ExpectFailure(t, err)
	_, _, err = config.Load(write(t, "this is not toml"))
	test.ExpectFailure(t, err)
}

func TestSample(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "sub", "presetsel.toml")
	test.DemandSuccess(t, config.WriteSample(pth))

	// sample is not overwritten
	test.ExpectFailure(t, config.WriteSample(pth))

	cfg, _, err := config.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Host.FrameRate, 60)
	test.ExpectEquality(t, cfg.Host.RenderDelay, 2)
	test.ExpectInequality(t, config.Sample(), "")
}
