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

package hardware_test

import (
	"testing"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware"
	"github.com/Andretti1967/asteroidino/hardware/cpu"
	"github.com/Andretti1967/asteroidino/hardware/dvg"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
	"github.com/Andretti1967/asteroidino/hardware/pacer"
	"github.com/Andretti1967/asteroidino/test"
)

// scriptedCPU performs one scripted bus action per step. Steps beyond the
// end of the script do nothing, like a program spinning in a loop.
type scriptedCPU struct {
	bus    cpu.Bus
	script []func(cpu.Bus)
	step   int

	nmi      bool
	nmiEdges int
}

func (mc *scriptedCPU) Reset() error {
	mc.step = 0
	return nil
}

func (mc *scriptedCPU) Step() (int, error) {
	if mc.step < len(mc.script) {
		mc.script[mc.step](mc.bus)
	}
	mc.step++
	return 4, nil
}

func (mc *scriptedCPU) AssertInterrupt(line cpu.Line, active bool) {
	if line != cpu.NMI {
		return
	}
	if active && !mc.nmi {
		mc.nmiEdges++
	}
	mc.nmi = active
}

type frameCounter struct {
	frames [][]dvg.Sample
}

func (snk *frameCounter) Present(samples []dvg.Sample) error {
	cp := make([]dvg.Sample, len(samples))
	copy(cp, samples)
	snk.frames = append(snk.frames, cp)
	return nil
}

func newTestMachine(t *testing.T, sink dvg.FrameSink) *hardware.Asteroids {
	t.Helper()

	ats, err := hardware.NewAsteroids(
		make([]uint8, memorymap.SizeProgramROM),
		make([]uint8, memorymap.SizeVectorROM),
		sink,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return ats
}

func TestAsteroids_noCPU(t *testing.T) {
	ats := newTestMachine(t, nil)

	err := ats.Step()
	test.ExpectedSuccess(t, curated.Is(err, hardware.NoCPU))
}

// a program that assembles a display list in vector RAM and starts the
// generator produces a frame at the sink as a side effect of the bus write.
func TestAsteroids_dvgActivation(t *testing.T) {
	snk := &frameCounter{}
	ats := newTestMachine(t, snk)

	// display list: a zero-delta vector at intensity 7, then halt
	listBytes := []uint8{0x00, 0x00, 0x00, 0x70, 0x00, 0xa0}

	mc := &scriptedCPU{bus: ats.Mem}
	for i, b := range listBytes {
		offset := uint16(i)
		value := b
		mc.script = append(mc.script, func(bus cpu.Bus) {
			bus.Write(0x4000+offset, value)
		})
	}
	mc.script = append(mc.script, func(bus cpu.Bus) {
		bus.Write(0x3000, 0x00)
	})
	ats.AttachCPU(mc)

	for i := 0; i <= len(listBytes); i++ {
		if err := ats.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	test.Equate(t, len(snk.frames), 1)
	test.Equate(t, len(snk.frames[0]), 2)
	test.Equate(t, snk.frames[0][0].X, 512)
	test.Equate(t, snk.frames[0][0].Y, 512)
	test.Equate(t, snk.frames[0][0].Intensity, 7)
}

func TestAsteroids_nmiPacing(t *testing.T) {
	ats := newTestMachine(t, nil)
	mc := &scriptedCPU{bus: ats.Mem}
	ats.AttachCPU(mc)

	n := 2*pacer.DefaultThreshold + 5
	for i := 0; i < n; i++ {
		if err := ats.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	test.Equate(t, mc.nmiEdges, 2)
	test.ExpectedFailure(t, mc.nmi)
	test.Equate(t, ats.Instructions(), uint64(n))
	test.Equate(t, ats.Cycles(), uint64(4*n))
}

func TestAsteroids_run(t *testing.T) {
	ats := newTestMachine(t, nil)
	mc := &scriptedCPU{bus: ats.Mem}
	ats.AttachCPU(mc)

	checks := 0
	err := ats.Run(func() (bool, error) {
		checks++
		return checks < 10, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, checks, 10)

	// reset returns the counters to zero
	err = ats.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, ats.Instructions(), uint64(0))
	test.Equate(t, ats.Cycles(), uint64(0))
}
