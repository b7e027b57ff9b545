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

// Package dvg emulates the digital vector generator. The generator is a
// coprocessor: the CPU assembles a display list in vector RAM and starts
// the generator with a write to the GO address; the generator then works
// through the list on its own, steering the beam, until it executes a halt
// instruction.
//
// In this emulation an activation runs to completion before the bus write
// that triggered it returns, which matches how the game uses the hardware:
// the program busy-waits on the halt flag and never touches vector RAM
// while the generator is running.
package dvg

import (
	"fmt"

	"github.com/Andretti1967/asteroidino/logger"
)

// SentinelOpcode is the reserved opcode nibble given special treatment by
// handlers 4, 5 and 6. It is the short vector instruction.
const SentinelOpcode = 0x0f

// SafetyCeiling is the maximum number of micro-cycles a single activation
// may run. A malformed display list that never halts is cut off here and
// treated as if it had halted.
const SafetyCeiling = 10000

// MaxAxis is the largest beam coordinate on either axis.
const MaxAxis = 1023

// The beam is centred on the screen at reset and the scale field selects
// the unity entry of the scale table.
const (
	resetX     = 512
	resetY     = 512
	resetScale = 10
)

// scaleTable translates the 4-bit scale field into a delta multiplier. The
// product of delta and table entry is divided by 16, so entry 16 is unity.
var scaleTable = [16]int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 48, 64}

// signedDelta interprets an 11-bit two's-complement delta register. Bit 10
// is the sign.
func signedDelta(v uint16) int {
	if v&0x0400 == 0x0400 {
		return int(v&0x03ff) - 0x0400
	}
	return int(v & 0x03ff)
}

// clampAxis pins a beam coordinate to the playfield.
func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxAxis {
		return MaxAxis
	}
	return v
}

// DVG is the digital vector generator. It must be created with NewDVG.
//
// The generator is not safe for concurrent use: Activate is called from the
// machine goroutine as a side effect of a bus write and everything else
// follows from there.
type DVG struct {
	mem  VectorMemory
	sink FrameSink
	obs  Observer

	// beam state. the delta registers and the program counter are at most
	// twelve bits wide, the latched nibbles are four
	pc        uint16
	x         int
	y         int
	dvx       uint16
	dvy       uint16
	intensity uint8
	scale     uint8

	// sequencer state. latch is the five bit state latch: the low four
	// bits are replaced by the PROM output every micro-cycle, the high
	// bit persists
	latch  uint8
	opcode uint8

	stack   controlStack
	samples []Sample
	halted  bool
	busy    bool

	// diagnostic counters since creation
	Activations uint64
	Runaways    int
}

// NewDVG is the preferred method of initialisation for the DVG type. The
// sink may be nil, in which case completed frames are discarded.
func NewDVG(mem VectorMemory, sink FrameSink) *DVG {
	vec := &DVG{
		mem:     mem,
		sink:    sink,
		samples: make([]Sample, 0, 512),
	}
	vec.Reset()
	return vec
}

// Attach registers an observer for tracing. A nil observer detaches.
func (vec *DVG) Attach(obs Observer) {
	vec.obs = obs
}

// Reset returns the generator to its power-on state.
func (vec *DVG) Reset() {
	vec.pc = 0
	vec.x = resetX
	vec.y = resetY
	vec.dvx = 0
	vec.dvy = 0
	vec.intensity = 0
	vec.scale = resetScale
	vec.latch = 0
	vec.opcode = 0
	vec.stack.reset()
	vec.samples = vec.samples[:0]
	vec.halted = true
	vec.busy = false
}

// Busy returns true while an activation is running. Visible on the bus
// through the halt bit of the IN0 row.
func (vec *DVG) Busy() bool {
	return vec.busy
}

// Activate starts the generator. The low nibble of the operand supplies the
// high bits of the starting program counter, so the game can begin a
// display list on any 256-word boundary of the vector address space.
//
// Implements the memory.VectorCoprocessor interface. The activation runs to
// completion before Activate returns; the completed sample list is handed
// to the frame sink.
func (vec *DVG) Activate(operand uint8) {
	vec.pc = uint16(operand&0x0f) << 8
	vec.x = resetX
	vec.y = resetY
	vec.dvx = 0
	vec.dvy = 0
	vec.intensity = 0
	vec.scale = resetScale
	vec.latch = 0
	vec.opcode = 0
	vec.stack.reset()
	vec.samples = vec.samples[:0]
	vec.halted = false
	vec.busy = true

	if vec.obs != nil {
		vec.obs.ActivationStart(vec.pc)
	}

	runaway := vec.run()
	vec.busy = false
	vec.Activations++

	if vec.obs != nil {
		vec.obs.ActivationEnd(len(vec.samples), runaway)
	}

	if vec.sink != nil {
		if err := vec.sink.Present(vec.samples); err != nil {
			logger.Logf("dvg", "frame dropped: %v", err)
		}
	}
}

// run executes micro-cycles until the program halts or the safety ceiling
// is reached. Returns true for a runaway program.
func (vec *DVG) run() bool {
	for i := 0; i < SafetyCeiling; i++ {
		vec.microCycle()
		if vec.halted {
			return false
		}
	}

	vec.halted = true
	vec.Runaways++
	logger.Logf("dvg", "runaway program from %03x halted at ceiling", vec.pc)
	return true
}

// microCycle performs one step of the sequencer: look up the next state in
// the PROM, and if the new state's strobe bit is set, fetch a data byte and
// dispatch the selected handler.
func (vec *DVG) microCycle() {
	next := sequencerPROM[promIndex(vec.latch, vec.opcode)]
	vec.latch = (vec.latch & 0x10) | next

	if next&0x08 != 0x08 {
		return
	}

	// bit 0 of the state selects the low or high byte of the 16-bit
	// little-endian word at the program counter
	data := vec.mem.VectorByte((vec.pc << 1) | uint16(next&0x01))
	handler := int(next & 0x07)
	vec.dispatch(handler, data)

	if vec.obs != nil {
		vec.obs.HandlerDispatch(handler, vec.pc, vec.opcode, data)
	}
}

func (vec *DVG) dispatch(handler int, data uint8) {
	switch handler {
	case 0:
		// push the return address for a subroutine call
		if vec.opcode&0x01 == 0x00 {
			ok := vec.stack.push(vec.pc)
			if vec.obs != nil {
				vec.obs.StackOp(true, vec.pc, ok)
			}
		}

	case 1:
		// opcode bit 0 distinguishes a subroutine return from a direct
		// load of the program counter. the jump target was assembled in
		// the Y-delta register by handlers 5 and 4
		if vec.opcode&0x01 == 0x01 {
			address, ok := vec.stack.pop()
			if ok {
				vec.pc = address
			}
			if vec.obs != nil {
				vec.obs.StackOp(false, address, ok)
			}
		} else {
			vec.pc = vec.dvy & 0x0fff
		}

	case 2:
		// commit the latched deltas as a beam movement
		vec.x = clampAxis(vec.x + (signedDelta(vec.dvx)*scaleTable[vec.scale&0x0f])>>4)
		vec.y = clampAxis(vec.y + (signedDelta(vec.dvy)*scaleTable[vec.scale&0x0f])>>4)
		vec.samples = append(vec.samples, Sample{
			X:         uint16(vec.x),
			Y:         uint16(vec.y),
			Intensity: vec.intensity & 0x0f,
		})

	case 3:
		// halt when opcode bit 0 is clear. the delta registers hold an
		// absolute position at this point; the beam parks there with the
		// gun blanked
		if vec.opcode&0x01 == 0x00 {
			vec.halted = true
			vec.x = clampAxis(int(vec.dvx))
			vec.y = clampAxis(int(vec.dvy))
			vec.samples = append(vec.samples, Sample{
				X:         uint16(vec.x),
				Y:         uint16(vec.y),
				Intensity: 0,
			})
		}

	case 4:
		vec.dvy &= 0x0f00
		if vec.opcode == SentinelOpcode {
			// short vector: the single data word carries intensity and
			// the X delta high bits where a long vector has its second
			// word. the deltas draw from their high nibbles alone
			vec.latchHighX(data)
		} else {
			vec.dvy |= uint16(data)
		}
		vec.pc++

	case 5:
		vec.dvy = (vec.dvy & 0x00ff) | (uint16(data&0x0f) << 8)
		vec.opcode = data >> 4
		if vec.opcode == SentinelOpcode {
			// discard any low byte left over from a previous vector
			vec.dvy &= 0x0f00
			vec.dvx &= 0x0f00
		}

	case 6:
		vec.dvx &= 0x0f00
		if vec.opcode != SentinelOpcode {
			vec.dvx |= uint16(data)
		}
		if vec.opcode&0x0a == 0x0a {
			vec.scale = vec.intensity & 0x0f
		}
		vec.pc++

	case 7:
		vec.latchHighX(data)
	}
}

// latchHighX is handler 7: the data byte's low nibble becomes the X-delta
// high bits and its high nibble the beam intensity. Also invoked from
// handler 4 for the short vector opcode.
func (vec *DVG) latchHighX(data uint8) {
	vec.dvx = (vec.dvx & 0x00ff) | (uint16(data&0x0f) << 8)
	vec.intensity = data >> 4
}

// StackDiagnostics returns the overflow and underflow counts since
// creation.
func (vec *DVG) StackDiagnostics() (overflows int, underflows int) {
	return vec.stack.overflows, vec.stack.underflows
}

// StackDepthNow returns the number of live return addresses.
func (vec *DVG) StackDepthNow() int {
	return vec.stack.depth()
}

func (vec *DVG) String() string {
	return fmt.Sprintf("pc=%03x op=%x beam=(%d, %d) @ %d scale=%d\n%s",
		vec.pc, vec.opcode, vec.x, vec.y, vec.intensity, vec.scale, vec.stack.String())
}
