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

// Package test bundles a bunch of functions useful for testing purposes,
// particularly in conjunction with the standard go test harness.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. The documentation for those functions describe the
// currently supported types.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is how errors usually work (nil to indicate no error) so we interpret
// nil in this way.
//
// ExpectEquality and ExpectInequality compare any two comparable values of
// the same type. The Demand variants are the same but stop the test on
// failure, which is useful when later checks depend on the value.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output, for example the output of the logger package.
package test
