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

// Package capture takes screenshots of the host's framebuffer and saves them
// to disk.
//
// The pixels of the framebuffer are captured as RGBA and then packed in place
// to RGB before being handed to an Encoder. The PNG type is the default
// Encoder.
//
// Screenshot files are saved in the host's screenshot directory and are named
// after the local time the screenshot was taken. See
// paths.ScreenshotFilename() for the format.
//
// Errors in the CaptureAndSave() function are logged and not returned. A
// failed screenshot never affects anything other than the screenshot itself.
package capture
