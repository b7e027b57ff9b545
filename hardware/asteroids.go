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

// Package hardware ties the emulated board together: the bus, the vector
// generator, the input ports and the interrupt pacer, plus whatever CPU
// implementation has been attached. The hardware package doesn't know
// anything about the GUI or the debugger; it just emulates.
package hardware

import (
	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware/cpu"
	"github.com/Andretti1967/asteroidino/hardware/dvg"
	"github.com/Andretti1967/asteroidino/hardware/input"
	"github.com/Andretti1967/asteroidino/hardware/memory"
	"github.com/Andretti1967/asteroidino/hardware/pacer"
)

// sentinel errors returned by the hardware package.
const (
	NoCPU = "asteroids: no CPU attached"
)

// Asteroids is the emulated board.
type Asteroids struct {
	Mem   *memory.Memory
	DVG   *dvg.DVG
	Ports *input.Ports
	Pacer *pacer.Pacer
	CPU   cpu.CPU

	cycles       uint64
	instructions uint64
}

// NewAsteroids is the preferred method of initialisation for the Asteroids
// type. The frame sink may be nil. A CPU must be attached with AttachCPU
// before the machine can be stepped.
func NewAsteroids(programROM []uint8, vectorROM []uint8, sink dvg.FrameSink) (*Asteroids, error) {
	mem, err := memory.NewMemory(programROM, vectorROM)
	if err != nil {
		return nil, curated.Errorf("asteroids: %v", err)
	}

	ats := &Asteroids{
		Mem:   mem,
		DVG:   dvg.NewDVG(mem, sink),
		Ports: input.NewPorts(),
	}

	pcr, err := pacer.NewPacer(ats, pacer.DefaultThreshold, pacer.DefaultRelease)
	if err != nil {
		return nil, curated.Errorf("asteroids: %v", err)
	}
	ats.Pacer = pcr

	mem.Ports = ats.Ports
	mem.DVG = ats.DVG
	mem.Clock = ats

	return ats, nil
}

// AttachCPU connects a CPU implementation to the board. The CPU is expected
// to have been built around the board's bus (the Mem field).
func (ats *Asteroids) AttachCPU(mc cpu.CPU) {
	ats.CPU = mc
}

// Step executes one CPU instruction and advances the interrupt pacer.
func (ats *Asteroids) Step() error {
	if ats.CPU == nil {
		return curated.Errorf(NoCPU)
	}

	cycles, err := ats.CPU.Step()
	if err != nil {
		return curated.Errorf("asteroids: %v", err)
	}

	ats.cycles += uint64(cycles)
	ats.instructions++
	ats.Pacer.Step()

	return nil
}

// Reset returns the board to its power-on state.
func (ats *Asteroids) Reset() error {
	ats.Mem.Reset()
	ats.DVG.Reset()
	ats.Pacer.Reset()
	ats.cycles = 0
	ats.instructions = 0

	if ats.CPU != nil {
		if err := ats.CPU.Reset(); err != nil {
			return curated.Errorf("asteroids: %v", err)
		}
	}

	return nil
}

// AssertInterrupt forwards an interrupt edge to the attached CPU. Safe to
// call with no CPU attached.
//
// Implements the cpu.InterruptLine interface for the pacer.
func (ats *Asteroids) AssertInterrupt(line cpu.Line, active bool) {
	if ats.CPU != nil {
		ats.CPU.AssertInterrupt(line, active)
	}
}

// Cycles returns the number of CPU cycles consumed since the last reset.
//
// Implements the memory.CycleClock interface: the 3kHz clock bit on the
// IN0 row is derived from this count.
func (ats *Asteroids) Cycles() uint64 {
	return ats.cycles
}

// Instructions returns the number of CPU instructions executed since the
// last reset.
func (ats *Asteroids) Instructions() uint64 {
	return ats.instructions
}
