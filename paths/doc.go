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

// Package paths contains functions to prepare paths to preset selector
// resources and to name screenshot files.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the default path of the keybinding file used by the
// command line tool.
//
//	d := paths.ResourcePath("presetselector.ini")
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".presetselector", is present in the program's current
// directory then that is the base path that will used. If it is not present,
// then the user's config directory is used. The package uses
// os.UserConfigDir() from go standard library for this.
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/presetselector/presetselector.ini
//
// ScreenshotFilename() returns a filename built from the local wall clock
// with millisecond precision. For example:
//
//	2024-03-09 14-05-01.042.png
package paths
