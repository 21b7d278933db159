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

// Package prefs facilitates the storage of preference values on disk. The
// addon uses it for the small number of tunables that live alongside the
// keybinding file.
//
// Values are one of the types in the package (Bool, Int, String) and are
// added to a Disk instance with a key:
//
//	dsk, _ := prefs.NewDisk("presetselector.prefs")
//	waitFrames := prefs.NewInt(5)
//	_ = dsk.Add("screenshot.waitFrames", waitFrames)
//	_ = dsk.Load()
//
// The file on disk is a plain text file. The first line is a warning not to
// edit the file while the host program is running. Every other line is a key
// and value separated by KeySep. Keys are written in sorted order. Keys that
// are not known to the Disk instance are preserved when the file is saved.
package prefs
