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

package dvg

import "fmt"

// Sample is a single beam position produced by the vector generator. A
// frame is an ordered sequence of samples; the beam travels from each
// sample to the next at the next sample's intensity. Intensity zero is a
// blanked movement.
type Sample struct {
	X         uint16
	Y         uint16
	Intensity uint8
}

func (s Sample) String() string {
	return fmt.Sprintf("(%d, %d) @ %d", s.X, s.Y, s.Intensity)
}

// FrameSink receives the completed sample list when the generator halts.
// The samples slice is owned by the generator and will be reused by the
// next activation: implementations must copy what they want to keep before
// returning.
type FrameSink interface {
	Present(samples []Sample) error
}

// VectorMemory is the generator's view of the shared vector address space:
// vector RAM followed immediately by vector ROM, byte addressed from zero.
// Implemented by the memory package.
type VectorMemory interface {
	VectorByte(address uint16) uint8
}
