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

package dvg_test

import (
	"testing"

	"github.com/Andretti1967/asteroidino/hardware/dvg"
	"github.com/Andretti1967/asteroidino/test"
)

// vectorMemory backs the generator with a writable display list.
type vectorMemory struct {
	bytes [0x1000]uint8
}

func (mem *vectorMemory) VectorByte(address uint16) uint8 {
	if int(address) < len(mem.bytes) {
		return mem.bytes[address]
	}
	return 0x00
}

// poke stores 16-bit little-endian words from the given word address.
func (mem *vectorMemory) poke(wordAddress uint16, words ...uint16) {
	for i, w := range words {
		mem.bytes[2*(wordAddress+uint16(i))] = uint8(w & 0x00ff)
		mem.bytes[2*(wordAddress+uint16(i))+1] = uint8(w >> 8)
	}
}

// recordingSink copies every presented frame.
type recordingSink struct {
	frames [][]dvg.Sample
	err    error
}

func (snk *recordingSink) Present(samples []dvg.Sample) error {
	cp := make([]dvg.Sample, len(samples))
	copy(cp, samples)
	snk.frames = append(snk.frames, cp)
	return snk.err
}

// traceObserver records the generator's callback sequence.
type traceObserver struct {
	starts   []uint16
	handlers []int
	pushes   []uint16
	pushOK   []bool
	pops     []bool
	ends     int
	runaway  bool
}

func (obs *traceObserver) ActivationStart(pc uint16) {
	obs.starts = append(obs.starts, pc)
}

func (obs *traceObserver) HandlerDispatch(handler int, pc uint16, opcode uint8, data uint8) {
	obs.handlers = append(obs.handlers, handler)
}

func (obs *traceObserver) StackOp(push bool, address uint16, ok bool) {
	if push {
		obs.pushes = append(obs.pushes, address)
		obs.pushOK = append(obs.pushOK, ok)
	} else {
		obs.pops = append(obs.pops, ok)
	}
}

func (obs *traceObserver) ActivationEnd(samples int, runaway bool) {
	obs.ends++
	obs.runaway = runaway
}

func newTestDVG() (*dvg.DVG, *vectorMemory, *recordingSink) {
	mem := &vectorMemory{}
	snk := &recordingSink{}
	return dvg.NewDVG(mem, snk), mem, snk
}

// a single long vector with zero deltas draws one sample at the beam's
// reset position, at the intensity carried by the instruction.
func TestDVG_draw(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0x0000, 0x7000, 0xa000)

	vec.Activate(0)

	test.ExpectedFailure(t, vec.Busy())
	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, len(snk.frames[0]), 2)
	test.Equate(t, snk.frames[0][0].X, 512)
	test.Equate(t, snk.frames[0][0].Y, 512)
	test.Equate(t, snk.frames[0][0].Intensity, 7)

	// the halt instruction parks the blanked beam at the latched position
	test.Equate(t, snk.frames[0][1].X, 0)
	test.Equate(t, snk.frames[0][1].Y, 0)
	test.Equate(t, snk.frames[0][1].Intensity, 0)

	test.Equate(t, vec.Activations, uint64(1))
}

func TestDVG_deltasAndClamping(t *testing.T) {
	vec, mem, snk := newTestDVG()

	// dy = -924 (11-bit two's complement), dx = +50, intensity 5. the y
	// axis clamps at zero
	mem.poke(0, 0x0464, 0x5032, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, snk.frames[0][0].X, 562)
	test.Equate(t, snk.frames[0][0].Y, 0)
	test.Equate(t, snk.frames[0][0].Intensity, 5)
}

// a call followed by a return resumes at the word after the call, with the
// stack depth restored.
func TestDVG_callReturn(t *testing.T) {
	vec, mem, snk := newTestDVG()
	obs := &traceObserver{}
	vec.Attach(obs)

	mem.poke(0, 0xc004, 0xa000)
	mem.poke(4, 0xd000)

	vec.Activate(0)

	// the pushed return address is the word after the call
	test.Equate(t, len(obs.pushes), 1)
	test.Equate(t, obs.pushes[0], 1)
	test.ExpectedSuccess(t, obs.pushOK[0])
	test.Equate(t, len(obs.pops), 1)
	test.ExpectedSuccess(t, obs.pops[0])

	// the program halted through the instruction at the return address
	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, len(snk.frames[0]), 1)
	test.Equate(t, vec.StackDepthNow(), 0)

	overflows, underflows := vec.StackDiagnostics()
	test.Equate(t, overflows, 0)
	test.Equate(t, underflows, 0)
}

func TestDVG_jump(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0xe004)
	mem.poke(4, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, len(snk.frames[0]), 1)
	test.Equate(t, snk.frames[0][0].Intensity, 0)
}

// nesting deeper than the stack capacity drops the newest call and leaves
// the earlier entries intact.
func TestDVG_stackOverflow(t *testing.T) {
	vec, mem, _ := newTestDVG()
	obs := &traceObserver{}
	vec.Attach(obs)

	mem.poke(0x00, 0xc010)
	mem.poke(0x10, 0xc020)
	mem.poke(0x20, 0xc030)
	mem.poke(0x30, 0xc040)
	mem.poke(0x40, 0xc050)
	mem.poke(0x50, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(obs.pushes), 5)
	test.ExpectedSuccess(t, obs.pushOK[0])
	test.ExpectedSuccess(t, obs.pushOK[3])
	test.ExpectedFailure(t, obs.pushOK[4])

	// the surviving return addresses are the first four
	test.Equate(t, obs.pushes[0], 0x01)
	test.Equate(t, obs.pushes[1], 0x11)
	test.Equate(t, obs.pushes[2], 0x21)
	test.Equate(t, obs.pushes[3], 0x31)

	overflows, _ := vec.StackDiagnostics()
	test.Equate(t, overflows, 1)
	test.Equate(t, vec.StackDepthNow(), dvg.StackDepth)
}

// a return on an empty stack leaves the program counter where it was.
func TestDVG_stackUnderflow(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0xd000, 0xa000)

	vec.Activate(0)

	// execution fell through to the halt at the next word
	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, len(snk.frames[0]), 1)

	_, underflows := vec.StackDiagnostics()
	test.Equate(t, underflows, 1)
}

// a short vector carries its deltas and intensity in a single word. the
// oversized x delta clamps at the right edge.
func TestDVG_shortVector(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0xf073, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, snk.frames[0][0].X, 1023)
	test.Equate(t, snk.frames[0][0].Y, 512)
	test.Equate(t, snk.frames[0][0].Intensity, 7)
}

// a short vector's deltas live entirely in the high nibbles of the delta
// registers. dy = +256, dx = +768.
func TestDVG_shortVectorDeltas(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0xf173, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, snk.frames[0][0].X, 1023)
	test.Equate(t, snk.frames[0][0].Y, 768)
	test.Equate(t, snk.frames[0][0].Intensity, 7)
}

// a short vector following a long vector must not inherit the long vector's
// delta low bytes.
func TestDVG_shortVectorAfterLong(t *testing.T) {
	vec, mem, snk := newTestDVG()

	// long vector dy = +5, then short vector dy = +256, dx = 0
	mem.poke(0, 0x0005, 0x7000, 0xf170, 0xa000)

	vec.Activate(0)

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, snk.frames[0][0].X, 512)
	test.Equate(t, snk.frames[0][0].Y, 517)
	test.Equate(t, snk.frames[0][1].X, 512)
	test.Equate(t, snk.frames[0][1].Y, 773)
	test.Equate(t, snk.frames[0][1].Intensity, 7)
}

// a display list with no halt instruction is cut off at the safety ceiling.
func TestDVG_runaway(t *testing.T) {
	vec, _, snk := newTestDVG()
	obs := &traceObserver{}
	vec.Attach(obs)

	// memory is all zeroes: an endless run of zero-delta long vectors
	vec.Activate(0)

	test.Equate(t, vec.Runaways, 1)
	test.Equate(t, obs.ends, 1)
	test.ExpectedSuccess(t, obs.runaway)
	test.ExpectedFailure(t, vec.Busy())

	// the partial frame is still presented
	test.Equate(t, len(snk.frames), 1)
}

// the activation operand selects the starting page of the display list.
func TestDVG_activationOperand(t *testing.T) {
	vec, mem, snk := newTestDVG()
	obs := &traceObserver{}
	vec.Attach(obs)

	mem.poke(0x200, 0x0000, 0x3000, 0xa000)

	vec.Activate(0x02)

	test.Equate(t, obs.starts[0], 0x200)
	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, snk.frames[0][0].Intensity, 3)
}

// each activation starts from a clean slate: the sample list is cleared and
// the beam returns to its reset position.
func TestDVG_reactivation(t *testing.T) {
	vec, mem, snk := newTestDVG()
	mem.poke(0, 0x0464, 0x5032, 0xa000)

	vec.Activate(0)
	vec.Activate(0)

	test.Equate(t, len(snk.frames), 2)
	test.Equate(t, len(snk.frames[1]), 2)
	test.Equate(t, snk.frames[1][0].X, 562)
	test.Equate(t, snk.frames[1][0].Y, 0)
	test.Equate(t, vec.Activations, uint64(2))
}
