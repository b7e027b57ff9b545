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

// Package display sits between the vector generator and whatever is
// actually drawing to the screen. The generator publishes frames from the
// machine goroutine; the renderer reads the most recent complete frame at
// its own cadence from another goroutine.
//
// Frames are published by value: Present copies the generator's sample list
// into a fresh slice, and the slice returned by Latest is never written to
// again. Readers therefore never observe a frame mid-mutation, however long
// they hold onto it.
package display

import (
	"sync"

	"github.com/Andretti1967/asteroidino/hardware/dvg"
)

// VectorDisplay collects frames from the vector generator.
//
// Implements the dvg.FrameSink interface. Safe for concurrent use.
type VectorDisplay struct {
	crit   sync.Mutex
	latest []dvg.Sample
	frames uint64
}

// NewVectorDisplay is the preferred method of initialisation for the
// VectorDisplay type.
func NewVectorDisplay() *VectorDisplay {
	return &VectorDisplay{}
}

// Present implements the dvg.FrameSink interface.
func (scr *VectorDisplay) Present(samples []dvg.Sample) error {
	frame := make([]dvg.Sample, len(samples))
	copy(frame, samples)

	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.latest = frame
	scr.frames++

	return nil
}

// Latest returns the most recently completed frame, or nil if no frame has
// been presented yet. The returned slice is immutable.
func (scr *VectorDisplay) Latest() []dvg.Sample {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.latest
}

// Frames returns the number of frames presented since creation.
func (scr *VectorDisplay) Frames() uint64 {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.frames
}
