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

import (
	"testing"

	"github.com/Andretti1967/asteroidino/test"
)

func TestPROMIndex(t *testing.T) {
	// opcodes without bit 3 land in column 1 through the inverted high bit
	// of the state latch
	test.Equate(t, promIndex(0x00, 0x0), 0x10)
	test.Equate(t, promIndex(0x0d, 0x0), 0x1d)
	test.Equate(t, promIndex(0x0c, 0x7), 0x1c)

	// opcodes with bit 3 drive the column lines directly
	test.Equate(t, promIndex(0x0c, 0x8), 0x0c)
	test.Equate(t, promIndex(0x0c, 0x9), 0x1c)
	test.Equate(t, promIndex(0x0d, 0xa), 0x2d)
	test.Equate(t, promIndex(0x0c, 0xc), 0x4c)
	test.Equate(t, promIndex(0x0c, 0xf), 0x7c)

	// a set high bit of the latch is not inverted into the index
	test.Equate(t, promIndex(0x10, 0x0), 0x00)
}

// walk the PROM for each opcode column and check the resulting state flow.
func TestPROM_flows(t *testing.T) {
	flow := func(opcode uint8) []uint8 {
		states := []uint8{}
		latch := uint8(0)
		for i := 0; i < 8; i++ {
			latch = sequencerPROM[promIndex(latch, opcode)]
			states = append(states, latch)
			if latch == 0 {
				break
			}
		}
		return states
	}

	equateFlow := func(opcode uint8, expected []uint8) {
		t.Helper()
		states := flow(opcode)
		test.Equate(t, len(states), len(expected))
		for i := range expected {
			if i < len(states) {
				test.Equate(t, states[i], expected[i])
			}
		}
	}

	// long vectors: both columns 0 and 1
	for op := uint8(0x0); op <= 0x9; op++ {
		equateFlow(op, []uint8{0xd, 0xc, 0xf, 0xe, 0xa, 0x0})
	}

	// halt check
	equateFlow(0xa, []uint8{0xd, 0xc, 0xb, 0x0})
	equateFlow(0xb, []uint8{0xd, 0xc, 0xb, 0x0})

	// subroutine call, return, jump
	equateFlow(0xc, []uint8{0xd, 0xc, 0x8, 0x9, 0x0})
	equateFlow(0xd, []uint8{0xd, 0xc, 0x9, 0x0})
	equateFlow(0xe, []uint8{0xd, 0xc, 0x9, 0x0})

	// short vector
	equateFlow(0xf, []uint8{0xd, 0xc, 0xa, 0x0})
}

// the first two states of every instruction must not depend on the opcode:
// the opcode latched by handler 5 is stale until that handler has run.
func TestPROM_stalePrologue(t *testing.T) {
	for op := uint8(0); op <= 0xf; op++ {
		test.Equate(t, sequencerPROM[promIndex(0x00, op)], 0x0d)
		test.Equate(t, sequencerPROM[promIndex(0x0d, op)], 0x0c)
	}
}
