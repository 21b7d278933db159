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

package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/logger"
	"github.com/jetsetilly/presetselector/paths"
)

// Framebuffer is the source of the screenshot's pixel data. Implemented by
// the host.
type Framebuffer interface {
	// the dimensions of the image that will be returned by CaptureScreenshot()
	ScreenshotSize() (width int, height int)

	// fill the slice with pixel data. four bytes per pixel, RGBA order. rows
	// are in whatever order the host chooses. returns false on failure
	CaptureScreenshot(pixels []byte) bool
}

// Location of saved screenshots.
type Location interface {
	// the host's base path
	BasePath() string

	// the host's configured screenshot path. may be relative to the base path
	// or absolute
	ScreenshotPath() string
}

// number of bytes per pixel in the data returned by the Framebuffer and in
// the data given to the Encoder
const (
	framebufferChannels = 4
	encodedChannels     = 3
)

// Capturer takes and saves screenshots.
type Capturer struct {
	fb  Framebuffer
	loc Location
	enc Encoder

	// the wall clock. used to name the screenshot file
	now func() time.Time

	// path of the most recently saved screenshot
	last string
}

// NewCapturer is the preferred method of initialisation for the Capturer
// type. If the Encoder is nil then the PNG encoder is used.
func NewCapturer(fb Framebuffer, loc Location, enc Encoder) *Capturer {
	if enc == nil {
		enc = PNG{Compression: png.BestSpeed}
	}
	return &Capturer{
		fb:  fb,
		loc: loc,
		enc: enc,
		now: time.Now,
	}
}

// SetClock changes the function used to get the wall clock time.
func (c *Capturer) SetClock(now func() time.Time) {
	c.now = now
}

// StripAlpha packs four byte RGBA pixels into three byte RGB pixels. The
// packing is done in place with a single forward pass and the returned slice
// shares the underlying array of the pixels argument.
func StripAlpha(pixels []byte, count int) []byte {
	for i := 0; i < count; i++ {
		copy(pixels[i*encodedChannels:i*encodedChannels+encodedChannels],
			pixels[i*framebufferChannels:i*framebufferChannels+encodedChannels])
	}
	return pixels[:count*encodedChannels]
}

// Destination returns the path of a screenshot file. An absolute screenshot
// path replaces the base path.
func Destination(base string, screenshotPath string, filename string) string {
	var p string
	if filepath.IsAbs(screenshotPath) {
		p = filepath.Join(screenshotPath, filename)
	} else {
		p = filepath.Join(base, screenshotPath, filename)
	}
	return filepath.Clean(p)
}

// Capture a screenshot and save it to disk. Returns the path of the saved
// file.
func (c *Capturer) Capture() (string, error) {
	width, height := c.fb.ScreenshotSize()
	if width <= 0 || height <= 0 {
		return "", curated.Errorf("capture: %v", "framebuffer has no size")
	}

	count := width * height
	pixels := make([]byte, count*framebufferChannels)
	if !c.fb.CaptureScreenshot(pixels) {
		return "", curated.Errorf("capture: %v", "failed to capture screenshot")
	}

	pixels = StripAlpha(pixels, count)

	data, err := c.enc.Encode(pixels, width, height, encodedChannels)
	if err != nil {
		return "", curated.Errorf("encode: %v", err)
	}

	pth := Destination(c.loc.BasePath(), c.loc.ScreenshotPath(), paths.ScreenshotFilename(c.now()))

	if err := os.MkdirAll(filepath.Dir(pth), 0o755); err != nil {
		return "", curated.Errorf("create directory: %v", err)
	}

	// any existing file with the same name will be overwritten
	if err := os.WriteFile(pth, data, 0o644); err != nil {
		return "", curated.Errorf("write: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s (%s)", pth, humanize.Bytes(uint64(len(data))))
	c.last = pth

	return pth, nil
}

// Last returns the path of the most recently saved screenshot. Empty if no
// screenshot has been saved.
func (c *Capturer) Last() string {
	return c.last
}

// CaptureAndSave is the same as Capture() except that errors are logged and
// not returned. The path of the saved file is not returned either.
func (c *Capturer) CaptureAndSave() {
	if _, err := c.Capture(); err != nil {
		logger.Log(logger.Allow, "screenshot", err)
	}
}
