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

// Package bindstore keeps the list of bindings in an INI file. The bindings
// are in a single section:
//
//	[PresetKeybinds]
//	Preset_0=C:\presets\crt.ini
//	Keybind_0=65,1,0,0
//	Action_0=0
//
// The Keybind value is the primary key code followed by the ctrl, shift and
// alt flags. A missing Action value is the switch preset action.
//
// The file is locked while it is being read or written so that more than one
// process can share the file. The Watcher type notices changes made by other
// processes.
package bindstore
