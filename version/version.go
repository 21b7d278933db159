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

// Package version reports the version of the presetsel build. The version
// number is set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/presetselector/version.number=v0.1.0"
//
// Without a number the version is "unreleased" for builds made from a VCS
// checkout and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the command line tool.
const ApplicationName = "presetsel"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	Version  string
	Revision string
	Modified bool

	// true if the version is a numbered release
	Release bool
}

func (i Info) String() string {
	rev := i.Revision
	if rev == "" {
		rev = "no revision information"
	} else if i.Modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, rev)
}

// Read the version information of the running binary.
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(nil)
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) Info {
	var i Info
	var vcs bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			i.Revision = s.Value
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
