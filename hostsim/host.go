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

package hostsim

import (
	"fmt"
	"hash/fnv"
	"io"
	"sync"

	"github.com/jetsetilly/presetselector/keybind"
	"github.com/jetsetilly/presetselector/logger"
)

// Listener receives the frame events of the Host. Implemented by addon.Addon.
type Listener interface {
	OnOverlay()
	OnEffectsRendered()
}

// Message is an entry in the Host's log.
type Message struct {
	Level logger.Level
	Text  string
}

func (m Message) String() string {
	return fmt.Sprintf("%s: %s", m.Level, m.Text)
}

// Default dimensions of the simulated framebuffer.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// Host is an in-memory implementation of the host program of the addon.
//
// All functions are intended to be called from the same goroutine, with the
// exception of LogMessage() and Messages() which are safe to call from any
// goroutine.
type Host struct {
	listener Listener

	preset string

	// number of frames since the preset was changed and the number of frames
	// before the effects of a new preset are rendered
	sinceSwitch int
	renderDelay int

	// if false the effects for a new preset are never rendered
	rendering bool

	frame uint32

	down    map[keybind.KeyCode]bool
	pressed map[keybind.KeyCode]bool
	lastKey keybind.KeyCode

	// modifiers held for the current frame only. used for key presses from
	// the terminal, which cannot report key releases
	tapped keybind.Modifiers

	width, height int
	captureFail   bool

	basePath string
	config   map[string]map[string]string

	switches []string

	crit     sync.Mutex
	messages []Message
	echo     io.Writer
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(basePath string, preset string) *Host {
	return &Host{
		preset:    preset,
		rendering: true,
		down:      make(map[keybind.KeyCode]bool),
		pressed:   make(map[keybind.KeyCode]bool),
		width:     DefaultWidth,
		height:    DefaultHeight,
		basePath:  basePath,
		config:    make(map[string]map[string]string),
	}
}

// SetListener sets the recipient of frame events.
func (h *Host) SetListener(l Listener) {
	h.listener = l
}

// SetRenderDelay sets the number of frames after a preset change before the
// effects of the preset are rendered.
func (h *Host) SetRenderDelay(frames int) {
	h.renderDelay = max(frames, 0)
}

// SetRendering enables or disables the rendering of effects.
func (h *Host) SetRendering(on bool) {
	h.rendering = on
}

// SetScreenSize changes the dimensions of the framebuffer.
func (h *Host) SetScreenSize(width, height int) {
	h.width = width
	h.height = height
}

// SetCaptureFail causes future calls to CaptureScreenshot() to fail.
func (h *Host) SetCaptureFail(fail bool) {
	h.captureFail = fail
}

// SetConfigValue sets a value in the host configuration.
func (h *Host) SetConfigValue(section string, key string, value string) {
	s, ok := h.config[section]
	if !ok {
		s = make(map[string]string)
		h.config[section] = s
	}
	s[key] = value
}

// SetEcho writes every new host log message to the io.Writer.
func (h *Host) SetEcho(w io.Writer) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.echo = w
}

// Frame runs a single frame. The listener's OnOverlay() is called first. The
// listener's OnEffectsRendered() is called if the effects for the current
// preset are rendered on this frame. Key presses are cleared at the end of
// the frame.
func (h *Host) Frame() {
	h.frame++

	if h.listener != nil {
		h.listener.OnOverlay()
	}

	if h.rendering && h.sinceSwitch >= h.renderDelay {
		if h.listener != nil {
			h.listener.OnEffectsRendered()
		}
	}
	h.sinceSwitch++

	clear(h.pressed)
	h.lastKey = keybind.KeyNone
	h.tapped = keybind.Modifiers{}
}

// FrameNum returns the number of frames run.
func (h *Host) FrameNum() uint32 {
	return h.frame
}

// Press a key. The key is pressed for this frame and held until released.
func (h *Host) Press(key keybind.KeyCode) {
	h.down[key] = true
	h.pressed[key] = true
	h.lastKey = key
}

// Release a key.
func (h *Host) Release(key keybind.KeyCode) {
	delete(h.down, key)
}

// ReleaseAll keys.
func (h *Host) ReleaseAll() {
	clear(h.down)
}

// Tap presses the key with the modifiers held for the current frame only.
func (h *Host) Tap(key keybind.KeyCode, mod keybind.Modifiers) {
	h.tapped = mod
	h.pressed[key] = true
	h.lastKey = key
}

// Switches returns every preset switched to since the Host was created.
func (h *Host) Switches() []string {
	return h.switches
}

// CurrentPreset implements the addon.Host interface.
func (h *Host) CurrentPreset() string {
	return h.preset
}

// SetCurrentPreset implements the addon.Host interface. Setting the preset
// always reloads the preset even if it is the same as the current preset.
func (h *Host) SetCurrentPreset(preset string) {
	h.preset = preset
	h.sinceSwitch = 0
	h.switches = append(h.switches, preset)
}

// IsKeyDown implements the addon.Host interface.
func (h *Host) IsKeyDown(key keybind.KeyCode) bool {
	switch key {
	case keybind.KeyControl:
		if h.tapped.Ctrl {
			return true
		}
	case keybind.KeyShift:
		if h.tapped.Shift {
			return true
		}
	case keybind.KeyAlt:
		if h.tapped.Alt {
			return true
		}
	}
	return h.down[key]
}

// IsKeyPressed implements the addon.Host interface.
func (h *Host) IsKeyPressed(key keybind.KeyCode) bool {
	return h.pressed[key]
}

// LastKeyPressed implements the addon.Host interface.
func (h *Host) LastKeyPressed() keybind.KeyCode {
	return h.lastKey
}

// ScreenshotSize implements the addon.Host interface.
func (h *Host) ScreenshotSize() (int, int) {
	return h.width, h.height
}

// PresetColour returns the colour used to fill the framebuffer for a preset.
// Each preset has a different colour.
func PresetColour(preset string) (r, g, b uint8) {
	f := fnv.New32a()
	f.Write([]byte(preset))
	v := f.Sum32()
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// CaptureScreenshot implements the addon.Host interface. The image is a flat
// fill of the preset's colour with a vertical fade to black. The alpha
// channel is always 0xff.
func (h *Host) CaptureScreenshot(pixels []byte) bool {
	if h.captureFail || len(pixels) < h.width*h.height*4 {
		return false
	}

	r, g, b := PresetColour(h.preset)
	for y := 0; y < h.height; y++ {
		f := h.height - y
		for x := 0; x < h.width; x++ {
			i := (y*h.width + x) * 4
			pixels[i] = uint8(int(r) * f / h.height)
			pixels[i+1] = uint8(int(g) * f / h.height)
			pixels[i+2] = uint8(int(b) * f / h.height)
			pixels[i+3] = 0xff
		}
	}

	return true
}

// BasePath implements the addon.Host interface.
func (h *Host) BasePath() string {
	return h.basePath
}

// ConfigValue implements the addon.Host interface.
func (h *Host) ConfigValue(section string, key string) string {
	if s, ok := h.config[section]; ok {
		return s[key]
	}
	return ""
}

// LogMessage implements the addon.Host interface.
func (h *Host) LogMessage(level logger.Level, msg string) {
	h.crit.Lock()
	defer h.crit.Unlock()

	m := Message{Level: level, Text: msg}
	h.messages = append(h.messages, m)
	if h.echo != nil {
		io.WriteString(h.echo, m.String()+"\n")
	}
}

// Messages returns a copy of the host's log.
func (h *Host) Messages() []Message {
	h.crit.Lock()
	defer h.crit.Unlock()
	m := make([]Message, len(h.messages))
	copy(m, h.messages)
	return m
}
