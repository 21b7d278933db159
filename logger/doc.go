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

// Package logger is the central log for the preset selector. Entries are
// made with a tag and a detail.
//
//	logger.Log(logger.Allow, "screenshot", err)
//	logger.Logf(logger.Allow, "bindings", "config saved to: %s", pth)
//
// The central logger keeps a limited number of entries. Adjacent entries with
// the same tag and detail are collapsed into a single entry with a repeat
// count.
//
// There are no explicit log levels. An entry made with an error value as the
// detail, or with an error value amongst the format arguments, has the Error
// level. All other entries have the Info level. The level only matters to a
// Sink, which is how the host program's log is fed.
//
// The Permission interface allows the caller to decide whether an entry should
// be made at all. The Allow value is used when an entry should always be made.
package logger
