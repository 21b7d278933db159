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

//go:build windows

package hostsim

import (
	"context"

	"github.com/jetsetilly/presetselector/curated"
)

// Keyboard reads key presses from a terminal in raw mode. Not supported on
// windows.
type Keyboard struct{}

// OpenKeyboard always fails on windows.
func OpenKeyboard(device string) (*Keyboard, error) {
	return nil, curated.Errorf("keyboard: %v", "raw terminal not supported on windows")
}

// Run returns immediately.
func (kb *Keyboard) Run(ctx context.Context, events chan<- KeyEvent) error {
	return nil
}

// Close does nothing.
func (kb *Keyboard) Close() error {
	return nil
}
