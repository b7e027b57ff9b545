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

// Package memorymap holds the address decoding tables for the asteroidino
// board. MapAddress() translates any 16-bit address into a memory area and a
// normalised index into that area, with program ROM mirroring already
// applied.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case IN0:
		return "IN0"
	case IN1:
		return "IN1"
	case DSW:
		return "DSW"
	case IO:
		return "IO"
	case VectorRAM:
		return "VectorRAM"
	case VectorROM:
		return "VectorROM"
	case ROM:
		return "ROM"
	}
	return "undefined"
}

// The different memory areas of the board.
const (
	Undefined Area = iota
	RAM
	IN0
	IN1
	DSW
	IO
	VectorRAM
	VectorROM
	ROM
)

// The origin and memory top for each area of memory.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x0fff)
	OriginIN0       = uint16(0x2000)
	MemtopIN0       = uint16(0x2007)
	OriginIN1       = uint16(0x2400)
	MemtopIN1       = uint16(0x2407)
	OriginDSW       = uint16(0x2800)
	MemtopDSW       = uint16(0x2803)
	OriginIO        = uint16(0x3000)
	MemtopIO        = uint16(0x3fff)
	OriginVectorRAM = uint16(0x4000)
	MemtopVectorRAM = uint16(0x47ff)
	OriginVectorROM = uint16(0x5000)
	MemtopVectorROM = uint16(0x57ff)
	OriginROM       = uint16(0x6800)
	MemtopROM       = uint16(0xf7ff)
	OriginVectors   = uint16(0xf800)
	MemtopVectors   = uint16(0xffff)
)

// Sizes of the backing arrays for each area. The program ROM image (three 2KB
// chips) is smaller than its mapped window and is mirrored across it.
const (
	SizeRAM        = 0x1000
	SizeVectorRAM  = 0x0800
	SizeVectorROM  = 0x0800
	SizeProgramROM = 0x1800
)

// The program ROM window is 0x9000 bytes which the 0x1800 byte image divides
// exactly, giving six mirrors. The 6502 vector table window at the very top
// of memory is always served by the last 2KB chip of the image.
const (
	MirrorProgramROM = SizeProgramROM
	OriginVectorChip = SizeProgramROM - 0x0800
)

// OpenBus is the value read from any address that no region or port claims.
// Writes to such addresses are ignored.
const OpenBus = uint8(0xff)

// MapAddress translates a 16-bit address into a memory area and a normalised
// index into that area's backing array. ROM mirroring is already applied to
// the returned index. Addresses in the IO area return the address unchanged:
// dispatch on individual ports is the memory package's job.
func MapAddress(address uint16) (Area, uint16) {
	switch {
	case address <= MemtopRAM:
		return RAM, address & (SizeRAM - 1)

	case address >= OriginIN0 && address <= MemtopIN0:
		return IN0, address & 0x0007

	case address >= OriginIN1 && address <= MemtopIN1:
		return IN1, address & 0x0007

	case address >= OriginDSW && address <= MemtopDSW:
		return DSW, address & 0x0003

	case address >= OriginIO && address <= MemtopIO:
		return IO, address

	case address >= OriginVectorRAM && address <= MemtopVectorRAM:
		return VectorRAM, address - OriginVectorRAM

	case address >= OriginVectorROM && address <= MemtopVectorROM:
		return VectorROM, address - OriginVectorROM

	case address >= OriginROM && address <= MemtopROM:
		return ROM, (address - OriginROM) % MirrorProgramROM

	case address >= OriginVectors:
		return ROM, OriginVectorChip + (address - OriginVectors)
	}

	return Undefined, address
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	a, _ := MapAddress(address)
	return a == area
}
