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

// Package romset loads the board's ROM chip images from disk. Images are
// raw byte dumps, one file per chip, named as in the common romset
// distributions.
package romset

import (
	"os"
	"path/filepath"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
)

// sentinel errors returned by the romset package.
const (
	LoadError   = "romset: %v"
	BadChipSize = "romset: %s is %d bytes (expected %d)"
)

// Conventional file names of the chips in the revision 2 romset. The three
// program chips cover 0x6800 to 0x7fff in listing order.
const (
	ChipEF2 = "035145-02.ef2"
	ChipH2  = "035144-02.h2"
	ChipJ2  = "035143-02.j2"
	ChipNP3 = "035127-02.np3"
)

// Size of every chip in the set.
const ChipSize = 0x0800

// ROMSet is the assembled contents of the board's ROM chips, ready for
// hardware.NewAsteroids.
type ROMSet struct {
	Program []uint8
	Vector  []uint8
}

// Load reads a romset from a directory containing the conventionally named
// chip files.
func Load(directory string) (*ROMSet, error) {
	return LoadFiles(
		filepath.Join(directory, ChipEF2),
		filepath.Join(directory, ChipH2),
		filepath.Join(directory, ChipJ2),
		filepath.Join(directory, ChipNP3),
	)
}

// LoadFiles reads a romset from explicitly named chip files. The first
// three arguments are the program chips in address order; the last is the
// vector ROM.
func LoadFiles(ef2 string, h2 string, j2 string, np3 string) (*ROMSet, error) {
	set := &ROMSet{
		Program: make([]uint8, 0, memorymap.SizeProgramROM),
	}

	for _, filename := range []string{ef2, h2, j2} {
		chip, err := readChip(filename)
		if err != nil {
			return nil, err
		}
		set.Program = append(set.Program, chip...)
	}

	chip, err := readChip(np3)
	if err != nil {
		return nil, err
	}
	set.Vector = chip

	return set, nil
}

func readChip(filename string) ([]uint8, error) {
	chip, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(chip) != ChipSize {
		return nil, curated.Errorf(BadChipSize, filepath.Base(filename), len(chip), ChipSize)
	}
	return chip, nil
}
