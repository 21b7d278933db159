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

package hostsim

import (
	"strings"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/keybind"
)

// KeyEvent is a key press from the keyboard.
type KeyEvent struct {
	Key keybind.KeyCode
	Mod keybind.Modifiers

	// the user wants to stop
	Quit bool
}

// list of ASCII codes for non-alphanumeric characters
const (
	asciiInterrupt = 3
	asciiBackspace = 8
	asciiTab       = 9
	asciiReturn    = 13
	asciiEsc       = 27
	asciiDelete    = 127
)

// virtual key codes not named in the keybind package
const (
	vkTab    keybind.KeyCode = 0x09
	vkReturn keybind.KeyCode = 0x0d
	vkEscape keybind.KeyCode = 0x1b
	vkSpace  keybind.KeyCode = 0x20
	vkLeft   keybind.KeyCode = 0x25
	vkUp     keybind.KeyCode = 0x26
	vkRight  keybind.KeyCode = 0x27
	vkDown   keybind.KeyCode = 0x28
	vkDelete keybind.KeyCode = 0x2e
	vkF1     keybind.KeyCode = 0x70
)

// cursor keys following ESC [
var cursorKeys = map[byte]keybind.KeyCode{
	'A': vkUp,
	'B': vkDown,
	'C': vkRight,
	'D': vkLeft,
}

// function key numbers in sequences of the form ESC [ n ~
var tildeKeys = map[string]keybind.KeyCode{
	"3":  vkDelete,
	"15": vkF1 + 4,
	"17": vkF1 + 5,
	"18": vkF1 + 6,
	"19": vkF1 + 7,
	"20": vkF1 + 8,
	"21": vkF1 + 9,
	"23": vkF1 + 10,
	"24": vkF1 + 11,
}

// DecodeKeys converts bytes read from a terminal in raw mode to key events.
// Bytes that do not correspond to a key are ignored.
//
// Terminals do not report modifier keys on their own. Upper case letters are
// reported as the letter with shift held, control characters as the letter
// with ctrl held and characters following an unrecognised escape as the
// character with alt held.
func DecodeKeys(b []byte) []KeyEvent {
	var ev []KeyEvent

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == asciiInterrupt:
			ev = append(ev, KeyEvent{Quit: true})

		case c == asciiBackspace || c == asciiDelete:
			ev = append(ev, KeyEvent{Key: keybind.KeyBackspace})

		case c == asciiTab:
			ev = append(ev, KeyEvent{Key: vkTab})

		case c == asciiReturn || c == '\n':
			ev = append(ev, KeyEvent{Key: vkReturn})

		case c == asciiEsc:
			n, e := decodeEscape(b[i+1:])
			ev = append(ev, e)
			i += n

		case c >= 1 && c <= 26:
			ev = append(ev, KeyEvent{Key: keybind.KeyCode('A' + c - 1), Mod: keybind.Modifiers{Ctrl: true}})

		default:
			if e, ok := decodeChar(c); ok {
				ev = append(ev, e)
			}
		}
	}

	return ev
}

func decodeChar(c byte) (KeyEvent, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return KeyEvent{Key: keybind.KeyCode(c - 'a' + 'A')}, true
	case c >= 'A' && c <= 'Z':
		return KeyEvent{Key: keybind.KeyCode(c), Mod: keybind.Modifiers{Shift: true}}, true
	case c >= '0' && c <= '9':
		return KeyEvent{Key: keybind.KeyCode(c)}, true
	case c == ' ':
		return KeyEvent{Key: vkSpace}, true
	}
	return KeyEvent{}, false
}

// decodes the bytes following an ESC. returns the number of bytes consumed
func decodeEscape(b []byte) (int, KeyEvent) {
	if len(b) == 0 {
		return 0, KeyEvent{Key: vkEscape}
	}

	switch b[0] {
	case '[':
		if len(b) > 1 {
			if k, ok := cursorKeys[b[1]]; ok {
				return 2, KeyEvent{Key: k}
			}
			if end := strings.IndexByte(string(b[1:]), '~'); end > 0 {
				if k, ok := tildeKeys[string(b[1:1+end])]; ok {
					return end + 2, KeyEvent{Key: k}
				}
			}
		}
	case 'O':
		// F1 to F4
		if len(b) > 1 && b[1] >= 'P' && b[1] <= 'S' {
			return 2, KeyEvent{Key: vkF1 + keybind.KeyCode(b[1]-'P')}
		}
	case asciiEsc:
		return 0, KeyEvent{Key: vkEscape}
	}

	if e, ok := decodeChar(b[0]); ok {
		e.Mod.Alt = true
		return 1, e
	}

	return 0, KeyEvent{Key: vkEscape}
}

// ParseLine converts a line of text to a key event. The line is a chord name
// such as "Ctrl + Shift + F5". The words "quit" and "exit" are a quit event.
func ParseLine(s string) (KeyEvent, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "quit", "exit":
		return KeyEvent{Quit: true}, nil
	case "":
		return KeyEvent{}, curated.Errorf("keyboard: %v", "empty line")
	}

	c, err := keybind.ParseChordName(s)
	if err != nil {
		return KeyEvent{}, curated.Errorf("keyboard: %v", err)
	}
	return KeyEvent{Key: c.Key, Mod: c.Modifiers}, nil
}

// Apply the key event to the Host. The key is pressed for the current frame
// only.
func (h *Host) Apply(ev KeyEvent) {
	if ev.Quit || ev.Key == keybind.KeyNone {
		return
	}
	h.Tap(ev.Key, ev.Mod)
}
