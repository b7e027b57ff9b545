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

// The vector generator is not a conventional instruction decoder. It is a
// sequencer driven by a 128x4 bipolar PROM: on every micro-cycle the PROM
// is addressed by the current micro-state and the latched opcode and its
// output nibble becomes the next micro-state. States with bit 3 set strobe
// one of eight data handlers, selected by the state's low three bits.
//
// The table is organised as eight columns of sixteen states. The column is
// the low three bits of the latched opcode when its bit 3 is set; opcodes
// 0x0 to 0x7 land in column 1 through the inverted high bit of the state
// latch. States 0x0 and 0xd are identical across all columns: the opcode
// latched by handler 5 is stale until that handler has run, so the first
// two micro-cycles of every instruction must not depend on it.
//
// Column flows:
//
//	0, 1  long vector     0 -> d -> c -> f -> e -> a -> 0
//	2, 3  halt check      0 -> d -> c -> b -> 0
//	4     subroutine call 0 -> d -> c -> 8 -> 9 -> 0
//	5, 6  return / jump   0 -> d -> c -> 9 -> 0
//	7     short vector    0 -> d -> c -> a -> 0
var sequencerPROM = [128]uint8{
	// column 0: opcode 0x8 (long vector)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0xf, 0xc, 0xa, 0xe,
	// column 1: opcodes 0x0-0x7 and 0x9 (long vector)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0xf, 0xc, 0xa, 0xe,
	// column 2: opcode 0xa (halt and latch position)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0xb, 0xc, 0x0, 0x0,
	// column 3: opcode 0xb (halt check passes)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0xb, 0xc, 0x0, 0x0,
	// column 4: opcode 0xc (subroutine call)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x9, 0x0, 0x0, 0x0, 0x8, 0xc, 0x0, 0x0,
	// column 5: opcode 0xd (subroutine return)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x9, 0xc, 0x0, 0x0,
	// column 6: opcode 0xe (jump)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x9, 0xc, 0x0, 0x0,
	// column 7: opcode 0xf (short vector)
	0xd, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0xa, 0xc, 0x0, 0x0,
}

// promIndex computes the PROM address from the state latch and the latched
// opcode. The base index combines the inverted high bit of the latch with
// the low four state bits. Opcodes with bit 3 set drive their low three
// bits onto the column lines directly.
func promIndex(latch uint8, opcode uint8) uint8 {
	idx := (latch & 0x0f) | (^latch & 0x10)
	if opcode&0x08 == 0x08 {
		idx = (idx & 0x0f) | ((opcode & 0x07) << 4)
	}
	return idx & 0x7f
}
