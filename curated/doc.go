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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("bindings: %v", err)
//
//	if curated.Is(e, "bindings: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means that code does not need to worry about
// the immediate context of the function which creates the error:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("bindings: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return curated.Errorf("bindings: %v", "file is locked")
//	}
//
// The message returned by A() will be:
//
//	bindings: file is locked
//
// and not:
//
//	bindings: bindings: file is locked
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Any error values given to Errorf() are returned by the Unwrap() method of
// the curated error. The errors.Is() and errors.As() functions in the
// standard library therefore see through curated errors, which is useful when
// testing for conditions like fs.ErrNotExist.
package curated
