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

package memory

import (
	"github.com/Andretti1967/asteroidino/hardware/memory/addresses"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
)

// Peek returns the value at the address without the restrictions of the
// normal bus. Unlike Read, peeking at the IO area returns the most recently
// latched value rather than the open bus.
func (mem *Memory) Peek(address uint16) uint8 {
	area, _ := memorymap.MapAddress(address)

	if area == memorymap.IO {
		switch address {
		case addresses.OutputLatch:
			return mem.outputLatch
		case addresses.SoundExplosion:
			return mem.soundLatches[0]
		case addresses.SoundThump:
			return mem.soundLatches[1]
		case addresses.SoundNoiseReset:
			return mem.soundLatches[2]
		}
		if address >= addresses.SoundLatchBase && address <= addresses.SoundLatchTop {
			return mem.soundLatches[3]
		}
	}

	return mem.Read(address)
}

// Poke stores the value at the address without the restrictions of the
// normal bus. Unlike Write, poking can alter ROM contents. Pokes to areas
// with no backing storage are ignored.
func (mem *Memory) Poke(address uint16, data uint8) {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[idx] = data
	case memorymap.VectorRAM:
		mem.vectorRAM[idx] = data
	case memorymap.VectorROM:
		mem.vectorROM[idx] = data
	case memorymap.ROM:
		mem.programROM[idx] = data
	}
}
