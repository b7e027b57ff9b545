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

// Package cpu defines the contract between the asteroidino hardware and the
// processor that drives it. The processor itself is not part of this project.
// Any 6502 core (or a test double) that can speak to a byte-addressed bus and
// accept interrupt line changes can be attached to the machine.
package cpu

// Line identifies one of the interrupt inputs on the processor package.
type Line int

// The two interrupt inputs of a 6502. The asteroidino board only ever drives
// the NMI line but peripherals are free to use IRQ.
const (
	NMI Line = iota
	IRQ
)

func (l Line) String() string {
	switch l {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown"
}

// Bus is the memory system as seen by the processor. Implementations must be
// total over the 16-bit address range: a read never fails, a write is never
// rejected. See the memory package for the canonical implementation.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// CPU is the external processor collaborator. Step() executes one instruction
// and returns the number of machine cycles consumed.
//
// AssertInterrupt() changes the state of one of the interrupt lines. The
// board models an edge-triggered NMI: implementations should latch the
// falling edge rather than require the line to stay active.
type CPU interface {
	Reset() error
	Step() (int, error)
	AssertInterrupt(line Line, active bool)
}

// InterruptLine is the subset of the CPU interface needed by components that
// only ever touch the interrupt inputs.
type InterruptLine interface {
	AssertInterrupt(line Line, active bool)
}
