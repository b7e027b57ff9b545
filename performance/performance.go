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

// Package performance measures the emulation. The benchmark feeds the
// vector generator the built-in demo display list as fast as it will go,
// which is where this emulation spends its time; optional CPU and memory
// profiles can be written for closer study.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/display"
	"github.com/Andretti1967/asteroidino/hardware"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
	"github.com/Andretti1967/asteroidino/romset"
)

// sentinel errors returned by the performance package.
const (
	CheckError = "performance: %v"
)

// Check benchmarks the vector generator for the given duration, writing a
// summary to output. Profiling output is controlled by the profile
// argument.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	scr := display.NewVectorDisplay()
	ats, err := hardware.NewAsteroids(
		make([]uint8, memorymap.SizeProgramROM),
		make([]uint8, memorymap.SizeVectorROM),
		scr,
	)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	// install the demo display list in vector RAM
	for i, b := range romset.DemoProgram() {
		ats.Mem.Poke(uint16(0x4000+i), b)
	}

	runner := func() error {
		end := time.Now().Add(dur)
		for time.Now().Before(end) {
			// a burst of activations between clock checks
			for i := 0; i < 100; i++ {
				ats.DVG.Activate(0)
			}
		}
		return nil
	}

	err = profileRun(profile, runner)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	frames := scr.Frames()
	fmt.Fprintf(output, "%d frames in %v (%.1f fps)\n", frames, dur, CalcFPS(frames, dur))

	return nil
}

// CalcFPS returns the frame rate achieved over the given duration.
func CalcFPS(frames uint64, dur time.Duration) float32 {
	if dur <= 0 {
		return 0
	}
	return float32(float64(frames) / dur.Seconds())
}
