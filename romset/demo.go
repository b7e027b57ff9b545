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

package romset

// DemoProgram returns a hand-assembled display list, as bytes for the start
// of vector RAM. It draws a rock-like octagon around the centre of the
// screen by way of a subroutine, so it exercises the generator's vector,
// call, return and halt instructions. Used by the performance modes when no
// romset is available.
func DemoProgram() []uint8 {
	words := []uint16{}

	// main list: draw the rock twice, then halt
	words = append(words, jsrl(0x0008))
	words = append(words, jsrl(0x0008))
	words = append(words, halt())

	// pad to the subroutine entry at word 0x0008
	for len(words) < 0x0008 {
		words = append(words, continueOp())
	}

	// the rock: an irregular octagon, drawn bright
	words = append(words, vctr(80, 30, 12)...)
	words = append(words, vctr(50, -60, 12)...)
	words = append(words, vctr(-20, -70, 12)...)
	words = append(words, vctr(-90, -40, 12)...)
	words = append(words, vctr(-70, 40, 12)...)
	words = append(words, vctr(-10, 60, 12)...)
	words = append(words, vctr(30, 70, 12)...)
	words = append(words, vctr(30, -30, 12)...)
	words = append(words, rtsl())

	bytes := make([]uint8, 0, 2*len(words))
	for _, w := range words {
		bytes = append(bytes, uint8(w&0x00ff), uint8(w>>8))
	}
	return bytes
}

// vctr encodes a long vector instruction: two words carrying the Y and X
// deltas and the beam intensity.
func vctr(dy int, dx int, intensity uint8) []uint16 {
	return []uint16{
		encodeDelta(dy),
		(uint16(intensity&0x0f) << 12) | encodeDelta(dx),
	}
}

// encodeDelta produces the 11-bit two's-complement form of a delta in the
// range [-1024, 1023].
func encodeDelta(v int) uint16 {
	return uint16(v) & 0x07ff
}

func jsrl(target uint16) uint16 {
	return 0xc000 | (target & 0x0fff)
}

func rtsl() uint16 {
	return 0xd000
}

func halt() uint16 {
	return 0xa000
}

func continueOp() uint16 {
	return 0xb000
}
