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

package keybind

// Registry is the ordered list of bindings. The order of the list is the
// order bindings are tested when dispatching key presses and the order in
// which they are stored.
//
// The Registry is not safe for concurrent use. It is only ever accessed from
// the host's callback thread.
type Registry struct {
	bindings []*Binding
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry(bindings ...*Binding) *Registry {
	r := &Registry{}
	r.Replace(bindings)
	return r
}

// Len returns the number of bindings in the registry.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// Get returns the binding at index i. Returns nil if the index is out of
// range.
func (r *Registry) Get(i int) *Binding {
	if i < 0 || i >= len(r.bindings) {
		return nil
	}
	return r.bindings[i]
}

// Bindings returns a copy of the list of bindings. The bindings themselves are
// not copied.
func (r *Registry) Bindings() []*Binding {
	c := make([]*Binding, len(r.bindings))
	copy(c, r.bindings)
	return c
}

// Replace the contents of the registry. Nil entries are ignored.
func (r *Registry) Replace(bindings []*Binding) {
	n := make([]*Binding, 0, len(bindings))
	for _, b := range bindings {
		if b != nil {
			n = append(n, b)
		}
	}
	r.bindings = n
}

// CanAdd returns true if a new binding can be added. A new binding can be
// added if the registry is empty or if the most recent binding has a preset.
func (r *Registry) CanAdd() bool {
	return len(r.bindings) == 0 || r.bindings[len(r.bindings)-1].Preset != ""
}

// Add a new empty binding to the end of the registry. Returns nil if CanAdd()
// is false.
func (r *Registry) Add() *Binding {
	if !r.CanAdd() {
		return nil
	}
	b := &Binding{}
	r.bindings = append(r.bindings, b)
	return b
}

// Append a binding to the end of the registry regardless of CanAdd().
func (r *Registry) Append(b *Binding) {
	if b != nil {
		r.bindings = append(r.bindings, b)
	}
}

// MarkRemove marks the binding at index i for removal. The binding is removed
// on the next call to Commit(). Returns false if the index is out of range.
func (r *Registry) MarkRemove(i int) bool {
	b := r.Get(i)
	if b == nil {
		return false
	}
	b.Remove = true
	return true
}

// Commit removes all bindings marked for removal. Returns true if any binding
// was removed.
func (r *Registry) Commit() bool {
	n := r.bindings[:0]
	for _, b := range r.bindings {
		if !b.Remove {
			n = append(n, b)
		}
	}
	removed := len(n) != len(r.bindings)

	// clear the tail so that removed bindings are not kept alive by the
	// underlying array
	for i := len(n); i < len(r.bindings); i++ {
		r.bindings[i] = nil
	}
	r.bindings = n

	return removed
}

// AnyEditOpen returns true if the chord editor of any binding is open.
func (r *Registry) AnyEditOpen() bool {
	for _, b := range r.bindings {
		if b.EditOpen {
			return true
		}
	}
	return false
}
