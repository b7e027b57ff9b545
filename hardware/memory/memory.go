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
	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware/memory/addresses"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
)

// sentinel errors returned by the memory package.
const (
	BadROMImage = "memory: %s ROM image is %d bytes (expected %d)"
)

// InputPorts supplies the raw row bytes behind the IN0, IN1 and DSW
// addresses. The bit-select addressing on top of the rows is bus logic and
// is handled here. Implemented by the input package.
type InputPorts interface {
	IN0() uint8
	IN1() uint8
	DSW() uint8
}

// VectorCoprocessor is the generator activated by a write to the DVGStart
// port. Implemented by the dvg package.
type VectorCoprocessor interface {
	Activate(operand uint8)
	Busy() bool
}

// CycleClock reports the number of machine cycles consumed so far. Used to
// derive the 3kHz clock bit on the IN0 row. Implemented by the machine
// container.
type CycleClock interface {
	Cycles() uint64
}

// Memory implements the bus seen by the CPU (the cpu.Bus interface). Read
// and Write are total functions over the 16-bit address range: unclaimed
// addresses read as the open bus value and ignore writes.
//
// The memory areas are fixed at construction. ROM images are copied and
// immutable thereafter (outside of debugger pokes). The collaborator fields
// (Ports, DVG, Clock) are attached after construction by the machine
// container; each of them may be left nil, in which case the corresponding
// port bits read as inactive.
type Memory struct {
	ram        []uint8
	vectorRAM  []uint8
	vectorROM  []uint8
	programROM []uint8

	Ports InputPorts
	DVG   VectorCoprocessor
	Clock CycleClock

	// write-only latches, observable through Peek()
	outputLatch  uint8
	soundLatches [4]uint8

	// number of watchdog restarts since the last machine reset
	WatchdogCount int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The program ROM image must be exactly three 2KB chips and the vector ROM
// one 2KB chip.
func NewMemory(programROM []uint8, vectorROM []uint8) (*Memory, error) {
	if len(programROM) != memorymap.SizeProgramROM {
		return nil, curated.Errorf(BadROMImage, "program", len(programROM), memorymap.SizeProgramROM)
	}
	if len(vectorROM) != memorymap.SizeVectorROM {
		return nil, curated.Errorf(BadROMImage, "vector", len(vectorROM), memorymap.SizeVectorROM)
	}

	mem := &Memory{
		ram:        make([]uint8, memorymap.SizeRAM),
		vectorRAM:  make([]uint8, memorymap.SizeVectorRAM),
		vectorROM:  make([]uint8, memorymap.SizeVectorROM),
		programROM: make([]uint8, memorymap.SizeProgramROM),
	}
	copy(mem.programROM, programROM)
	copy(mem.vectorROM, vectorROM)

	return mem, nil
}

// Reset clears RAM, vector RAM and the write-only latches. ROM contents are
// unaffected.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0x00
	}
	for i := range mem.vectorRAM {
		mem.vectorRAM[i] = 0x00
	}
	mem.outputLatch = 0x00
	for i := range mem.soundLatches {
		mem.soundLatches[i] = 0x00
	}
	mem.WatchdogCount = 0
}

// Read is an implementation of cpu.Bus. It never fails.
func (mem *Memory) Read(address uint16) uint8 {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[idx]

	case memorymap.IN0:
		return bitSelect(mem.in0(), idx)

	case memorymap.IN1:
		var row uint8
		if mem.Ports != nil {
			row = mem.Ports.IN1()
		}
		return bitSelect(row, idx)

	case memorymap.DSW:
		var row uint8
		if mem.Ports != nil {
			row = mem.Ports.DSW()
		}
		// two DIP bits per address, multiplexed into bits 0 and 1. the
		// remaining bits read high
		return 0xfc | ((row >> (idx * 2)) & 0x03)

	case memorymap.IO:
		// the IO area is write-only
		return memorymap.OpenBus

	case memorymap.VectorRAM:
		return mem.vectorRAM[idx]

	case memorymap.VectorROM:
		return mem.vectorROM[idx]

	case memorymap.ROM:
		return mem.programROM[idx]
	}

	return memorymap.OpenBus
}

// Write is an implementation of cpu.Bus. Writes to ROM and to unclaimed
// addresses are ignored.
func (mem *Memory) Write(address uint16, data uint8) {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[idx] = data

	case memorymap.VectorRAM:
		mem.vectorRAM[idx] = data

	case memorymap.IO:
		mem.writePort(address, data)
	}
}

// writePort dispatches a write in the IO area to the individual ports.
func (mem *Memory) writePort(address uint16, data uint8) {
	switch address {
	case addresses.DVGStart:
		if mem.DVG != nil {
			mem.DVG.Activate(data)
		}

	case addresses.OutputLatch:
		mem.outputLatch = data

	case addresses.WatchdogReset:
		mem.WatchdogCount++

	case addresses.SoundExplosion:
		mem.soundLatches[0] = data

	case addresses.SoundThump:
		mem.soundLatches[1] = data

	case addresses.SoundNoiseReset:
		mem.soundLatches[2] = data

	default:
		if address >= addresses.SoundLatchBase && address <= addresses.SoundLatchTop {
			// LS259 addressable latch. one bit per address, the value is in
			// the written byte's high bit
			bit := uint8(1) << (address & 0x0007)
			if data&0x80 == 0x80 {
				mem.soundLatches[3] |= bit
			} else {
				mem.soundLatches[3] &^= bit
			}
		}
	}
}

// in0 composes the IN0 row from the input collaborator and the two hardware
// status bits that live on the row: the 3kHz clock and the vector generator
// halt signal.
func (mem *Memory) in0() uint8 {
	var row uint8

	if mem.Ports != nil {
		row = mem.Ports.IN0()
	}

	if mem.Clock != nil && mem.Clock.Cycles()&0x100 == 0x100 {
		row |= 1 << addresses.IN0Clock3kHz
	}

	// the halt signal is high while the generator is running. the game ROM
	// spins on this bit (LDA/BMI) until the generator finishes. without a
	// generator attached the bit stays low
	if mem.DVG != nil && mem.DVG.Busy() {
		row |= 1 << addresses.IN0VGHalt
	}

	return row
}

// bitSelect implements the input row addressing: the low address bits select
// which logical input is reflected into bit 7 of the result. all other bits
// read as ones.
func bitSelect(row uint8, bit uint16) uint8 {
	if (row>>bit)&0x01 == 0x01 {
		return 0x80
	}
	return 0x7f
}

// VectorByte provides the vector generator's view of the shared vector
// address space. Byte addresses 0x0000 to 0x07ff map onto vector RAM and
// 0x0800 to 0x0fff onto vector ROM. Addresses beyond the combined space read
// as zero, matching the board's pulled-down data bus.
//
// Implements the dvg.VectorMemory interface.
func (mem *Memory) VectorByte(address uint16) uint8 {
	if int(address) < len(mem.vectorRAM) {
		return mem.vectorRAM[address]
	}
	address -= uint16(len(mem.vectorRAM))
	if int(address) < len(mem.vectorROM) {
		return mem.vectorROM[address]
	}
	return 0x00
}
