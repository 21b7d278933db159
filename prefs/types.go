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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	pref
	value    atomic.Value // bool
	def      bool
	hookPost func(value Value) error
}

// NewBool creates a Bool with a default value. The zero value of Bool has a
// default of false.
func NewBool(def bool) *Bool {
	p := &Bool{def: def}
	p.value.Store(def)
	return p
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to the default value given to NewBool(), or
// false.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// String implements a string type in the prefs system.
type String struct {
	pref
	value    atomic.Value // string
	def      string
	hookPost func(value Value) error
}

// NewString creates a String with a default value.
func NewString(def string) *String {
	p := &String{def: def}
	p.value.Store(def)
	return p
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Set new value to String type. Values of any type are converted to a string
// with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the default value given to NewString(), or
// the empty string.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *String) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system. The value can be
// restricted to a range with SetRange().
type Int struct {
	pref
	value    atomic.Value // int
	def      int
	min      int
	max      int
	ranged   bool
	hookPost func(value Value) error
}

// NewInt creates an Int with a default value. The default value is the value
// used by Reset().
func NewInt(def int) *Int {
	p := &Int{def: def}
	p.value.Store(def)
	return p
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// SetRange restricts values to the range min to max inclusive. Values outside
// of the range are clamped.
func (p *Int) SetRange(min, max int) {
	p.min = min
	p.max = max
	p.ranged = true
	_ = p.Set(p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case uint32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.ranged {
		if nv < p.min {
			nv = p.min
		} else if nv > p.max {
			nv = p.max
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to the default value given to NewInt(), or zero.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
