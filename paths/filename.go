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

package paths

import (
	"fmt"
	"time"
)

// ScreenshotExtension is the file extension of every screenshot filename.
const ScreenshotExtension = ".png"

// ScreenshotFilename creates a filename for a screenshot taken at time n. The
// time is converted to the local timezone. Assuming a functioning clock the
// filename should not collide with any existing filename. Note that the
// function does not test for this.
//
// Format of returned string is:
//
//	YYYY-MM-DD HH-MM-SS.mmm.png
func ScreenshotFilename(n time.Time) string {
	n = n.Local()
	return fmt.Sprintf("%04d-%02d-%02d %02d-%02d-%02d.%03d%s",
		n.Year(), n.Month(), n.Day(),
		n.Hour(), n.Minute(), n.Second(),
		n.Nanosecond()/int(time.Millisecond),
		ScreenshotExtension)
}
