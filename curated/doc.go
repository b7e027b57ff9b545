// This file is part of Asteroidino.
//
// Asteroidino is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Asteroidino is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Asteroidino.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is the error type used throughout the project. A curated
// error is created with the Errorf() function.
//
//	err := curated.Errorf("pacer: invalid threshold (%d)", threshold)
//
// The pattern string identifies the error. Sentinel patterns are declared as
// constants near the code that generates them and can be tested for with the
// Is() function, or anywhere in a chain of curated errors with the Has()
// function.
//
// Wrapping a curated error inside another curated error works as expected.
// Error() removes duplicate adjacent parts of the message chain so that
// messages remain readable however many layers they pass through.
package curated
