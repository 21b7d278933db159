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

package addon_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/presetselector/addon"
	"github.com/jetsetilly/presetselector/bindstore"
	"github.com/jetsetilly/presetselector/hostsim"
	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/logger"
	"github.com/jetsetilly/presetselector/prefs"
	"github.com/jetsetilly/presetselector/test"
)

const screenshotDir = "screenshots"

func clock() func() time.Time {
	var n int
	return func() time.Time {
		n++
		return time.Date(2024, time.January, 2, 3, 4, 5, n*int(time.Millisecond), time.Local)
	}
}

type fixture struct {
	base  string
	host  *hostsim.Host
	addon *addon.Addon
}

func newFixture(t *testing.T, opts addon.Options) *fixture {
	t.Helper()

	base := t.TempDir()
	if opts.BindingsFile == "" {
		opts.BindingsFile = filepath.Join(base, "addons", addon.DefaultBindingsFile)
	}
	if opts.Clock == nil {
		opts.Clock = clock()
	}

	h := hostsim.NewHost(base, "A.ini")
	h.SetConfigValue("SCREENSHOT", "SavePath", screenshotDir)
	h.SetScreenSize(8, 6)

	a, err := addon.New(h, opts)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { a.Close() })

	h.SetListener(a)

	return &fixture{base: base, host: h, addon: a}
}

func (f *fixture) screenshots(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(f.base, screenshotDir))
	if err != nil {
		return nil
	}
	var s []string
	for _, e := range entries {
		s = append(s, e.Name())
	}
	return s
}

func (f *fixture) hostLog() string {
	var s strings.Builder
	for _, m := range f.host.Messages() {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}

func TestNew(t *testing.T) {
	_, err := addon.New(nil, addon.Options{})
	test.ExpectFailure(t, err)

	f := newFixture(t, addon.Options{})
	test.ExpectEquality(t, f.addon.Registry().Len(), 0)
	test.ExpectEquality(t, f.addon.Prefs.WaitFrames.Get().(int), 5)
	test.ExpectEquality(t, f.addon.Prefs.SwitchTimeout.Get().(int), 0)
	test.ExpectEquality(t, f.addon.Prefs.PresetDisplayLength.Get().(int), 40)
	test.ExpectEquality(t, f.addon.Prefs.AutoReload.Get().(bool), true)
	test.ExpectFailure(t, f.addon.Busy())
}

// screenshot workload from the point of view of the host
func TestScreenshotWorkload(t *testing.T) {
	f := newFixture(t, addon.Options{})

	f.addon.Screenshot("B.ini")
	test.ExpectSuccess(t, f.addon.Busy())

	// preset is switched on the first frame
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "B.ini")
	test.ExpectSuccess(t, f.addon.Busy())

	// switch completes on the second frame and the wait begins. the capture
	// happens five frames later
	for range 5 {
		f.host.Frame()
		test.ExpectEquality(t, len(f.screenshots(t)), 0)
		test.ExpectEquality(t, f.host.CurrentPreset(), "B.ini")
	}

	f.host.Frame()
	shots := f.screenshots(t)
	test.DemandEquality(t, len(shots), 1)
	test.ExpectEquality(t, shots[0], "2024-01-02 03-04-05.001.png")

	// the switch back to the original preset happens on the same frame as the
	// capture
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
	test.ExpectSuccess(t, f.addon.Busy())

	f.host.Frame()
	test.ExpectFailure(t, f.addon.Busy())

	test.ExpectEquality(t, len(f.host.Switches()), 2)
	test.ExpectSuccess(t, strings.Contains(f.hostLog(), "info: screenshot: saved: "))
}

func TestScreenshotAbsolutePath(t *testing.T) {
	f := newFixture(t, addon.Options{})
	elsewhere := t.TempDir()
	f.host.SetConfigValue("SCREENSHOT", "SavePath", elsewhere)

	f.addon.Screenshot("B.ini")
	for range 20 {
		f.host.Frame()
	}

	entries, err := os.ReadDir(elsewhere)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
	test.ExpectEquality(t, len(f.screenshots(t)), 0)
}

func TestSavePathPreference(t *testing.T) {
	f := newFixture(t, addon.Options{})
	test.ExpectEquality(t, f.addon.Prefs.SavePath.String(), "")

	test.DemandSuccess(t, f.addon.Prefs.SavePath.Set("shots"))
	f.addon.Screenshot("B.ini")
	for range 20 {
		f.host.Frame()
	}

	entries, err := os.ReadDir(filepath.Join(f.base, "shots"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
	test.ExpectEquality(t, len(f.screenshots(t)), 0)
}

func TestCaptureFailure(t *testing.T) {
	f := newFixture(t, addon.Options{})
	f.host.SetCaptureFail(true)

	f.addon.Screenshot("B.ini")
	for range 20 {
		f.host.Frame()
	}

	// the original preset is always restored
	test.ExpectFailure(t, f.addon.Busy())
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
	test.ExpectEquality(t, len(f.screenshots(t)), 0)
	test.ExpectSuccess(t, strings.Contains(f.hostLog(), "error: screenshot: capture: failed to capture screenshot"))
}

func TestStalledSwitch(t *testing.T) {
	f := newFixture(t, addon.Options{})
	f.host.SetRendering(false)

	f.addon.Screenshot("B.ini")
	for range 100 {
		f.host.Frame()
	}
	test.ExpectSuccess(t, f.addon.Busy())
	test.ExpectEquality(t, len(f.host.Switches()), 1)

	// rendering resumes and the workload completes
	f.host.SetRendering(true)
	for range 10 {
		f.host.Frame()
	}
	test.ExpectFailure(t, f.addon.Busy())
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
}

func TestSwitchTimeoutPreference(t *testing.T) {
	f := newFixture(t, addon.Options{})
	f.host.SetRendering(false)
	test.DemandSuccess(t, f.addon.Prefs.SwitchTimeout.Set(10))
	test.DemandSuccess(t, f.addon.Prefs.WaitFrames.Set(0))

	f.addon.Screenshot("B.ini")
	for range 50 {
		f.host.Frame()
	}
	test.ExpectFailure(t, f.addon.Busy())
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
	test.ExpectEquality(t, len(f.screenshots(t)), 1)
}

func TestPreferencesFile(t *testing.T) {
	base := t.TempDir()
	bindings := filepath.Join(base, "PresetSelector.ini")

	content := prefs.WarningBoilerPlate + "\nscreenshot.waitFrames :: 0\noverlay.presetDisplayLength :: 10\n"
	test.DemandSuccess(t, os.WriteFile(addon.PrefsPath(bindings), []byte(content), 0o644))

	f := newFixture(t, addon.Options{BindingsFile: bindings})
	test.ExpectEquality(t, f.addon.Prefs.WaitFrames.Get().(int), 0)
	test.ExpectEquality(t, f.addon.Prefs.PresetDisplayLength.Get().(int), 10)

	// with no wait the capture happens on the frame after the switch
	f.addon.Screenshot("B.ini")
	f.host.Frame()
	test.ExpectEquality(t, len(f.screenshots(t)), 0)
	f.host.Frame()
	test.ExpectEquality(t, len(f.screenshots(t)), 1)

	idx := f.addon.Add()
	f.addon.SetPreset(idx, "/a/long/path/to/a/preset.ini")
	test.ExpectEquality(t, f.addon.PresetDisplay(idx), "...preset.ini")
}

func TestPrefsPath(t *testing.T) {
	test.ExpectEquality(t, addon.PrefsPath("/a/b/PresetSelector.ini"), "/a/b/PresetSelector.prefs")
	test.ExpectEquality(t, addon.PrefsPath("/a/b/bindings"), "/a/b/bindings.prefs")
}

func bind(t *testing.T, f *fixture, preset string, key keybind.KeyCode, mod keybind.Modifiers, action keybind.Action) int {
	t.Helper()

	idx := f.addon.Add()
	test.DemandInequality(t, idx, -1)
	test.DemandSuccess(t, f.addon.SetPreset(idx, preset))
	test.DemandSuccess(t, f.addon.SetAction(idx, action))

	b := f.addon.Registry().Get(idx)
	b.Chord = keybind.Chord{Key: key, Modifiers: mod}

	return idx
}

func TestDispatch(t *testing.T) {
	f := newFixture(t, addon.Options{})
	bind(t, f, "X.ini", 0x41, keybind.Modifiers{}, keybind.SwitchPreset)
	bind(t, f, "B.ini", 0x74, keybind.Modifiers{Ctrl: true}, keybind.TakeScreenshot)

	// chord with no modifiers does not match when ctrl is held
	f.host.Press(keybind.KeyControl)
	f.host.Press(0x41)
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
	f.host.ReleaseAll()

	// switch preset is immediate
	f.host.Press(0x41)
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "X.ini")
	test.ExpectFailure(t, f.addon.Busy())
	f.host.ReleaseAll()

	// screenshot is queued during the frame and begins on the next frame
	f.host.Tap(0x74, keybind.Modifiers{Ctrl: true})
	f.host.Frame()
	test.ExpectSuccess(t, f.addon.Busy())
	test.ExpectEquality(t, f.host.CurrentPreset(), "X.ini")

	// key presses are ignored while the workload is in progress
	f.host.Tap(0x41, keybind.Modifiers{})
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "B.ini")

	for range 20 {
		f.host.Frame()
	}
	test.ExpectFailure(t, f.addon.Busy())
	test.ExpectEquality(t, f.host.CurrentPreset(), "X.ini")
	test.ExpectEquality(t, len(f.screenshots(t)), 1)
}

func TestSuppression(t *testing.T) {
	f := newFixture(t, addon.Options{})
	idx := bind(t, f, "X.ini", 0x41, keybind.Modifiers{}, keybind.SwitchPreset)

	test.DemandSuccess(t, f.addon.OpenChordEdit(idx))

	// the editor has focus and captures the key press. the chord is
	// unchanged because it is the same key
	f.host.Press(0x41)
	test.ExpectFailure(t, f.addon.CaptureChord(idx, true))
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "A.ini")
	f.host.ReleaseAll()

	// editor open but without focus
	f.host.Press(0x41)
	test.ExpectFailure(t, f.addon.CaptureChord(idx, false))
	f.host.Frame()
	test.ExpectEquality(t, f.host.CurrentPreset(), "X.ini")
}

func TestCaptureChord(t *testing.T) {
	f := newFixture(t, addon.Options{})
	idx := f.addon.Add()

	// editor cannot be opened until there is a preset
	test.ExpectFailure(t, f.addon.OpenChordEdit(idx))
	test.ExpectFailure(t, f.addon.CaptureChord(idx, true))
	test.ExpectEquality(t, f.addon.ChordButton(idx), "Keybind")

	f.addon.SetPreset(idx, "X.ini")
	test.DemandSuccess(t, f.addon.OpenChordEdit(idx))

	// modifiers on their own are ignored
	f.host.Press(keybind.KeyShift)
	test.ExpectFailure(t, f.addon.CaptureChord(idx, true))
	f.host.Frame()

	// key with the held modifier
	f.host.Press(0x70)
	test.ExpectSuccess(t, f.addon.CaptureChord(idx, true))
	f.host.Frame()
	b := f.addon.Registry().Get(idx)
	test.ExpectEquality(t, b.Chord.String(), "Shift + F1")
	test.ExpectEquality(t, f.addon.ChordButton(idx), "Change")
	f.host.ReleaseAll()

	// the captured chord is saved
	s, err := bindstore.NewStore(f.addon.BindingsFile())
	test.DemandSuccess(t, err)
	loaded, err := s.Load()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(loaded), 1)
	test.ExpectEquality(t, loaded[0].Chord.Format(), "112,0,1,0")

	// backspace clears the chord
	f.host.Press(keybind.KeyBackspace)
	test.ExpectSuccess(t, f.addon.CaptureChord(idx, true))
	test.ExpectFailure(t, b.Chord.Bound())
	f.host.Frame()

	test.DemandSuccess(t, f.addon.CloseChordEdit(idx))
	test.ExpectFailure(t, b.EditOpen)
	test.ExpectFailure(t, f.addon.CaptureChord(idx, true))
}

func TestAdd(t *testing.T) {
	f := newFixture(t, addon.Options{})
	test.ExpectSuccess(t, f.addon.CanAdd())
	idx := f.addon.Add()
	test.ExpectEquality(t, idx, 0)

	// cannot add another until the first has a preset
	test.ExpectFailure(t, f.addon.CanAdd())
	test.ExpectEquality(t, f.addon.Add(), -1)

	f.addon.SetPreset(idx, "X.ini")
	test.ExpectEquality(t, f.addon.Add(), 1)

	// out of range
	test.ExpectFailure(t, f.addon.SetPreset(5, "Y.ini"))
	test.ExpectFailure(t, f.addon.SetAction(5, keybind.TakeScreenshot))
	test.ExpectFailure(t, f.addon.SetAction(0, keybind.Action(9)))
	test.ExpectFailure(t, f.addon.MarkRemove(5))
	_, ok := f.addon.BrowseStart(5)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, f.addon.PresetDisplay(5), "")
}

func TestBrowseStart(t *testing.T) {
	f := newFixture(t, addon.Options{})
	f.host.SetCurrentPreset(filepath.Join("presets", "current", "A.ini"))

	idx := f.addon.Add()
	dir, ok := f.addon.BrowseStart(idx)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dir, filepath.Join("presets", "current"))
	test.ExpectEquality(t, f.addon.PresetDisplay(idx), "None")

	f.addon.SetPreset(idx, filepath.Join("presets", "other", "B.ini"))
	dir, _ = f.addon.BrowseStart(idx)
	test.ExpectEquality(t, dir, filepath.Join("presets", "other"))
}

func TestSaveLogging(t *testing.T) {
	f := newFixture(t, addon.Options{})
	idx := f.addon.Add()
	f.addon.SetPreset(idx, "X.ini")
	test.ExpectSuccess(t, strings.Contains(f.hostLog(), "info: preset selector: config saved to: "+f.addon.BindingsFile()))

	// changing the action to the same value does not save
	n := len(f.host.Messages())
	f.addon.SetAction(idx, keybind.SwitchPreset)
	test.ExpectEquality(t, len(f.host.Messages()), n)
	f.addon.SetAction(idx, keybind.TakeScreenshot)
	test.ExpectEquality(t, len(f.host.Messages()), n+1)
}

func TestSaveFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	test.DemandSuccess(t, os.WriteFile(blocker, nil, 0o644))

	// the bindings file cannot be created because its directory is a file
	f := newFixture(t, addon.Options{BindingsFile: filepath.Join(blocker, "PresetSelector.ini")})
	test.ExpectEquality(t, f.addon.Registry().Len(), 0)

	idx := f.addon.Add()
	f.addon.SetPreset(idx, "X.ini")
	test.ExpectSuccess(t, strings.Contains(f.hostLog(), "error: preset selector: config failed to save: "))

	// memory is still authoritative
	test.ExpectEquality(t, f.addon.Registry().Get(idx).Preset, "X.ini")
	test.ExpectFailure(t, f.addon.Save())
}

func TestRemove(t *testing.T) {
	f := newFixture(t, addon.Options{})
	bind(t, f, "X.ini", 0x41, keybind.Modifiers{}, keybind.SwitchPreset)
	bind(t, f, "Y.ini", 0x42, keybind.Modifiers{}, keybind.SwitchPreset)
	test.DemandSuccess(t, f.addon.Save())

	test.DemandSuccess(t, f.addon.MarkRemove(0))

	// removal happens at the end of the overlay tick
	f.host.Frame()
	test.DemandEquality(t, f.addon.Registry().Len(), 1)
	test.ExpectEquality(t, f.addon.Registry().Get(0).Preset, "Y.ini")

	// and is written to disk immediately
	s, err := bindstore.NewStore(f.addon.BindingsFile())
	test.DemandSuccess(t, err)
	loaded, err := s.Load()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(loaded), 1)
	test.ExpectEquality(t, loaded[0].Preset, "Y.ini")

	// nothing to commit
	test.ExpectFailure(t, f.addon.Commit())
}

func TestPersistence(t *testing.T) {
	base := t.TempDir()
	bindings := filepath.Join(base, "PresetSelector.ini")

	f := newFixture(t, addon.Options{BindingsFile: bindings})
	bind(t, f, "X.ini", 0x41, keybind.Modifiers{Ctrl: true}, keybind.SwitchPreset)
	test.DemandSuccess(t, f.addon.Save())
	test.DemandSuccess(t, f.addon.Close())

	g := newFixture(t, addon.Options{BindingsFile: bindings})
	test.DemandEquality(t, g.addon.Registry().Len(), 1)
	b := g.addon.Registry().Get(0)
	test.ExpectEquality(t, b.Preset, "X.ini")
	test.ExpectEquality(t, b.Chord.Tuple(), [4]uint32{0x41, 1, 0, 0})
	test.ExpectEquality(t, b.Action, keybind.SwitchPreset)
}

func TestReloadOnExternalChange(t *testing.T) {
	f := newFixture(t, addon.Options{Watch: true})
	bind(t, f, "X.ini", 0x41, keybind.Modifiers{}, keybind.SwitchPreset)

	// saving by the addon itself does not cause a reload
	for range 10 {
		f.host.Frame()
		time.Sleep(5 * time.Millisecond)
	}
	test.ExpectEquality(t, f.addon.Registry().Len(), 1)

	// another process changes the file
	s, err := bindstore.NewStore(f.addon.BindingsFile())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Save([]*keybind.Binding{
		{Preset: "P.ini", Chord: keybind.Chord{Key: 0x50}},
		{Preset: "Q.ini", Chord: keybind.Chord{Key: 0x51}},
	}))

	for range 200 {
		f.host.Frame()
		if f.addon.Registry().Len() == 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	test.DemandEquality(t, f.addon.Registry().Len(), 2)
	test.ExpectEquality(t, f.addon.Registry().Get(1).Preset, "Q.ini")
}

func TestAutoReloadPreference(t *testing.T) {
	f := newFixture(t, addon.Options{Watch: true})
	test.DemandSuccess(t, f.addon.Prefs.AutoReload.Set(false))

	s, err := bindstore.NewStore(f.addon.BindingsFile())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Save([]*keybind.Binding{
		{Preset: "P.ini", Chord: keybind.Chord{Key: 0x50}},
	}))

	for range 20 {
		f.host.Frame()
		time.Sleep(10 * time.Millisecond)
	}
	test.ExpectEquality(t, f.addon.Registry().Len(), 0)

	// an explicit reload still works
	f.addon.Reload()
	test.ExpectEquality(t, f.addon.Registry().Len(), 1)
}

func TestLoggerSink(t *testing.T) {
	f := newFixture(t, addon.Options{})
	logger.Log(logger.Allow, "test", "message")
	test.ExpectSuccess(t, strings.Contains(f.hostLog(), "info: test: message"))

	test.DemandSuccess(t, f.addon.Close())
	n := len(f.host.Messages())
	logger.Log(logger.Allow, "test", "after close")
	test.ExpectEquality(t, len(f.host.Messages()), n)
}
