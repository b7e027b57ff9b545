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

// Package pacer raises the periodic NMI that drives the game's frame logic.
// The real board derives the interrupt from a divider chain on the 3MHz
// clock; here the period is counted in executed instructions, which is what
// the game code actually cares about.
package pacer

import (
	"fmt"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/hardware/cpu"
)

// sentinel errors returned by the pacer package.
const (
	InvalidPeriod = "pacer: %s must be a positive instruction count (%d)"
)

// Default intervals, measured in instructions. The threshold approximates
// the 250Hz divider output of the real board at typical instruction rates.
const (
	DefaultThreshold = 300
	DefaultRelease   = 3
)

// Pacer asserts the NMI line every threshold instructions and releases it a
// fixed number of instructions later, long enough for a level-sensitive
// sampling of the line but short enough never to re-trigger the handler.
type Pacer struct {
	line      cpu.InterruptLine
	threshold int
	release   int

	sinceAssert  int
	releaseAfter int
	asserted     bool

	// total number of assertions since creation
	asserts uint64
}

// NewPacer is the preferred method of initialisation for the Pacer type.
// Both intervals must be positive.
func NewPacer(line cpu.InterruptLine, threshold int, release int) (*Pacer, error) {
	if threshold <= 0 {
		return nil, curated.Errorf(InvalidPeriod, "threshold", threshold)
	}
	if release <= 0 {
		return nil, curated.Errorf(InvalidPeriod, "release", release)
	}

	return &Pacer{
		line:      line,
		threshold: threshold,
		release:   release,
	}, nil
}

// Step advances the pacer by one executed instruction, asserting or
// releasing the NMI line as the counters demand. Called by the machine
// after every CPU instruction.
func (pcr *Pacer) Step() {
	if pcr.asserted {
		pcr.releaseAfter--
		if pcr.releaseAfter <= 0 {
			pcr.asserted = false
			pcr.line.AssertInterrupt(cpu.NMI, false)
		}
	}

	pcr.sinceAssert++
	if pcr.sinceAssert >= pcr.threshold {
		pcr.sinceAssert = 0
		pcr.asserted = true
		pcr.releaseAfter = pcr.release
		pcr.asserts++
		pcr.line.AssertInterrupt(cpu.NMI, true)
	}
}

// Reset returns the counters to their power-on state. The line is released
// if it was being held.
func (pcr *Pacer) Reset() {
	if pcr.asserted {
		pcr.line.AssertInterrupt(cpu.NMI, false)
	}
	pcr.sinceAssert = 0
	pcr.releaseAfter = 0
	pcr.asserted = false
	pcr.asserts = 0
}

// Asserts returns the number of NMI assertions since creation or the last
// Reset.
func (pcr *Pacer) Asserts() uint64 {
	return pcr.asserts
}

func (pcr *Pacer) String() string {
	return fmt.Sprintf("nmi: every %d instructions (asserted %d times)", pcr.threshold, pcr.asserts)
}
