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

package romset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware/dvg"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
	"github.com/Andretti1967/asteroidino/romset"
	"github.com/Andretti1967/asteroidino/test"
)

func writeChip(t *testing.T, directory string, name string, fill uint8) {
	t.Helper()
	chip := make([]uint8, romset.ChipSize)
	for i := range chip {
		chip[i] = fill
	}
	if err := os.WriteFile(filepath.Join(directory, name), chip, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeChip(t, dir, romset.ChipEF2, 0x01)
	writeChip(t, dir, romset.ChipH2, 0x02)
	writeChip(t, dir, romset.ChipJ2, 0x03)
	writeChip(t, dir, romset.ChipNP3, 0x04)

	set, err := romset.Load(dir)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(set.Program), memorymap.SizeProgramROM)
	test.Equate(t, len(set.Vector), memorymap.SizeVectorROM)

	// chips appear in address order
	test.Equate(t, set.Program[0x0000], 0x01)
	test.Equate(t, set.Program[0x0800], 0x02)
	test.Equate(t, set.Program[0x1000], 0x03)
	test.Equate(t, set.Vector[0x0000], 0x04)
}

func TestLoad_missing(t *testing.T) {
	_, err := romset.Load(t.TempDir())
	test.ExpectedSuccess(t, curated.Is(err, romset.LoadError))
}

func TestLoad_badSize(t *testing.T) {
	dir := t.TempDir()
	writeChip(t, dir, romset.ChipEF2, 0x01)
	writeChip(t, dir, romset.ChipH2, 0x02)
	writeChip(t, dir, romset.ChipJ2, 0x03)
	if err := os.WriteFile(filepath.Join(dir, romset.ChipNP3), make([]uint8, 0x0400), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := romset.Load(dir)
	test.ExpectedSuccess(t, curated.Is(err, romset.BadChipSize))
}

// the demo program runs on the generator and produces a frame.
func TestDemoProgram(t *testing.T) {
	prog := romset.DemoProgram()
	test.ExpectedSuccess(t, len(prog) <= memorymap.SizeVectorRAM)

	mem := &demoMemory{bytes: prog}
	snk := &demoSink{}
	vec := dvg.NewDVG(mem, snk)

	vec.Activate(0)

	test.Equate(t, vec.Runaways, 0)
	test.Equate(t, len(snk.frames), 1)

	// two passes over the eight-segment rock, plus the terminal sample
	test.Equate(t, len(snk.frames[0]), 17)

	// the final drawn sample closes the octagon back at the beam's start
	last := snk.frames[0][15]
	test.Equate(t, last.X, 512)
	test.Equate(t, last.Y, 512)
}

type demoMemory struct {
	bytes []uint8
}

func (mem *demoMemory) VectorByte(address uint16) uint8 {
	if int(address) < len(mem.bytes) {
		return mem.bytes[address]
	}
	return 0x00
}

type demoSink struct {
	frames [][]dvg.Sample
}

func (snk *demoSink) Present(samples []dvg.Sample) error {
	cp := make([]dvg.Sample, len(samples))
	copy(cp, samples)
	snk.frames = append(snk.frames, cp)
	return nil
}
