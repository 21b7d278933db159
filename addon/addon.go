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
	"time"

	"github.com/jetsetilly/presetselector/bindstore"
	"github.com/jetsetilly/presetselector/capture"
	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/dispatch"
	"github.com/jetsetilly/presetselector/frameclock"
	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/logger"
	"github.com/jetsetilly/presetselector/paths"
	"github.com/jetsetilly/presetselector/prefs"
	"github.com/jetsetilly/presetselector/workload"
)

// Name of the addon as presented to the host.
const Name = "Preset Selector"

// Description of the addon as presented to the host.
const Description = "Bind specific presets to keyboard shortcuts."

// DefaultBindingsFile is the name of the bindings file in the resource
// directory.
const DefaultBindingsFile = "PresetSelector.ini"

// PresetExtensions are the file extensions offered by the file picker when
// choosing a preset.
var PresetExtensions = []string{".ini", ".txt"}

// the configuration value of the host that specifies where screenshots are
// saved
const (
	screenshotSection = "SCREENSHOT"
	screenshotKey     = "SavePath"
)

// Host is the program that the addon is running in.
type Host interface {
	CurrentPreset() string
	SetCurrentPreset(preset string)

	// keyboard state. the pressed state and the last key pressed are for the
	// current frame only
	IsKeyDown(key keybind.KeyCode) bool
	IsKeyPressed(key keybind.KeyCode) bool
	LastKeyPressed() keybind.KeyCode

	// the image presented by the host
	ScreenshotSize() (width int, height int)
	CaptureScreenshot(pixels []byte) bool

	// the base path of the host. relative paths in the host's configuration
	// are relative to this path
	BasePath() string

	// return a value from the host's configuration. an empty string if the
	// value does not exist
	ConfigValue(section string, key string) string

	// log a message in the host's log
	LogMessage(level logger.Level, msg string)
}

// Options for a new Addon.
type Options struct {
	// path to the bindings file. if empty the file is in the resource
	// directory
	BindingsFile string

	// encoder used for screenshots. if nil the PNG encoder is used
	Encoder capture.Encoder

	// watch the bindings file for changes made by other processes
	Watch bool

	// the wall clock used to name screenshot files. if nil time.Now() is used
	Clock func() time.Time
}

// Addon is the context for all addon state. The host should call
// OnOverlay() and OnEffectsRendered() as appropriate. Neither function is
// safe to call concurrently with any other function.
type Addon struct {
	host Host

	Prefs *Preferences

	frame uint32
	clock frameclock.Clock

	registry   *keybind.Registry
	store      *bindstore.Store
	watcher    *bindstore.Watcher
	scheduler  *workload.Scheduler
	dispatcher *dispatch.Dispatcher
	capturer   *capture.Capturer

	// whether a chord editor had keyboard focus since the last overlay tick
	editFocused bool

	// the watcher has been triggered but the bindings have not been checked
	// yet
	reloadPending bool
}

// New is the preferred method of initialisation for the Addon type.
//
// Failure to load the bindings is not an error. The failure is logged and the
// addon starts with an empty list of bindings.
func New(host Host, opts Options) (*Addon, error) {
	if host == nil {
		return nil, curated.Errorf("addon: %v", "no host")
	}

	logger.SetSink(host)

	a := &Addon{
		host:     host,
		registry: keybind.NewRegistry(),
	}

	pth := opts.BindingsFile
	if pth == "" {
		var err error
		pth, err = paths.EnsureResourcePath(DefaultBindingsFile)
		if err != nil {
			return nil, curated.Errorf("addon: %v", err)
		}
	}

	var err error

	a.store, err = bindstore.NewStore(pth)
	if err != nil {
		return nil, curated.Errorf("addon: %v", err)
	}

	a.Prefs, err = newPreferences(PrefsPath(pth))
	if err != nil {
		return nil, curated.Errorf("addon: %v", err)
	}
	if err := a.Prefs.Load(); err != nil {
		logger.Log(logger.Allow, "preset selector", err)
	}

	a.capturer = capture.NewCapturer(host, location{host: host, savePath: a.Prefs.SavePath}, opts.Encoder)
	if opts.Clock != nil {
		a.capturer.SetClock(opts.Clock)
	}

	a.scheduler = workload.NewScheduler(environment{a: a})
	a.dispatcher = dispatch.NewDispatcher(host, host, a.scheduler, a.registry)

	// scheduler settings follow the preferences
	a.applyPrefs()
	a.Prefs.WaitFrames.SetHookPost(func(prefs.Value) error {
		a.applyPrefs()
		return nil
	})
	a.Prefs.SwitchTimeout.SetHookPost(func(prefs.Value) error {
		a.applyPrefs()
		return nil
	})

	a.load()

	if opts.Watch {
		a.watcher, err = bindstore.NewWatcher(pth)
		if err != nil {
			logger.Log(logger.Allow, "bindings", err)
		}
	}

	return a, nil
}

func (a *Addon) applyPrefs() {
	a.scheduler.SetWaitFrames(uint32(a.Prefs.WaitFrames.Get().(int)))
	a.scheduler.SetSwitchTimeout(uint32(a.Prefs.SwitchTimeout.Get().(int)))
}

// Close releases resources used by the Addon. The host sink is no longer
// given log entries.
func (a *Addon) Close() error {
	logger.SetSink(nil)
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// BindingsFile returns the path of the bindings file.
func (a *Addon) BindingsFile() string {
	return a.store.Path()
}

// Registry returns the list of bindings.
func (a *Addon) Registry() *keybind.Registry {
	return a.registry
}

// Frame returns the number of overlay ticks so far.
func (a *Addon) Frame() uint32 {
	return a.frame
}

// Busy returns true if a screenshot workload is in progress.
func (a *Addon) Busy() bool {
	return a.scheduler.Busy()
}

// Screenshot queues a screenshot of the target preset. The current preset
// is restored once the screenshot has been taken.
func (a *Addon) Screenshot(target string) string {
	return a.scheduler.Enqueue(a.host.CurrentPreset(), target)
}

// LastScreenshot returns the path of the most recently saved screenshot.
func (a *Addon) LastScreenshot() string {
	return a.capturer.Last()
}

// OnOverlay should be called by the host once per frame.
func (a *Addon) OnOverlay() {
	a.frame++
	a.clock.NotifyFrame(a.frame)

	a.checkReload()

	// key presses are ignored for the entire frame if a workload is in
	// progress
	if !a.scheduler.Poll() {
		a.dispatcher.Dispatch(a.editFocused)
	}
	a.editFocused = false

	a.Commit()
}

// OnEffectsRendered should be called by the host every time the effects for
// the current preset have been rendered.
func (a *Addon) OnEffectsRendered() {
	a.clock.NotifyEffectsRendered(a.frame)
}

func (a *Addon) checkReload() {
	if a.watcher == nil {
		return
	}

	if a.watcher.Triggered() && a.Prefs.AutoReload.Get().(bool) {
		a.reloadPending = true
	}

	// don't replace bindings from under an open editor
	if !a.reloadPending || a.registry.AnyEditOpen() {
		return
	}
	a.reloadPending = false

	if a.store.Changed() {
		logger.Logf(logger.Allow, "bindings", "reloading: %s", a.store.Path())
		a.load()
	}
}

// Reload the bindings from disk.
func (a *Addon) Reload() {
	a.load()
}

func (a *Addon) load() {
	bindings, err := a.store.Load()
	if err != nil {
		logger.Log(logger.Allow, "bindings", err)
		a.registry.Replace(nil)
		return
	}
	a.registry.Replace(bindings)
}

// Save the bindings to disk. The result is logged.
func (a *Addon) Save() error {
	err := a.store.Save(a.registry.Bindings())
	if err != nil {
		logger.Logf(logger.Allow, "preset selector", "config failed to save: %s: %v", a.store.Path(), err)
		return err
	}
	logger.Logf(logger.Allow, "preset selector", "config saved to: %s", a.store.Path())
	return nil
}
