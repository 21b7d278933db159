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

//go:build !windows

package hostsim

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/presetselector/curated"
)

// the terminal device used by OpenKeyboard() if no device is specified
const defaultDevice = "/dev/tty"

// how often the terminal reader checks for the context being cancelled
const readTimeout = 50 * time.Millisecond

// Keyboard reads key presses from a terminal in raw mode.
type Keyboard struct {
	t *term.Term
}

// OpenKeyboard puts the terminal into raw mode. An empty device string opens
// the controlling terminal. The terminal must be restored with Close().
func OpenKeyboard(device string) (*Keyboard, error) {
	if device == "" {
		device = defaultDevice
	}

	t, err := term.Open(device, term.RawMode, term.ReadTimeout(readTimeout))
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}

	return &Keyboard{t: t}, nil
}

// Run reads key presses until the context is cancelled or the terminal can no
// longer be read. Key events are sent on the events channel.
func (kb *Keyboard) Run(ctx context.Context, events chan<- KeyEvent) error {
	b := make([]byte, 16)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := kb.t.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf("keyboard: %v", err)
		}

		for _, ev := range DecodeKeys(b[:n]) {
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Close restores the terminal to the mode it was in before OpenKeyboard().
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		kb.t.Close()
		return curated.Errorf("keyboard: %v", err)
	}
	if err := kb.t.Close(); err != nil {
		return curated.Errorf("keyboard: %v", err)
	}
	return nil
}
