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

package display_test

import (
	"testing"

	"github.com/Andretti1967/asteroidino/display"
	"github.com/Andretti1967/asteroidino/hardware/dvg"
	"github.com/Andretti1967/asteroidino/test"
)

func TestVectorDisplay(t *testing.T) {
	scr := display.NewVectorDisplay()

	if scr.Latest() != nil {
		t.Errorf("expected nil frame before first present")
	}
	test.Equate(t, scr.Frames(), uint64(0))

	err := scr.Present([]dvg.Sample{{X: 512, Y: 512, Intensity: 7}})
	test.ExpectedSuccess(t, err)

	frame := scr.Latest()
	test.Equate(t, len(frame), 1)
	test.Equate(t, frame[0].X, 512)
	test.Equate(t, scr.Frames(), uint64(1))
}

// a published frame is unaffected by the generator reusing its sample list.
func TestVectorDisplay_publishByValue(t *testing.T) {
	scr := display.NewVectorDisplay()

	samples := []dvg.Sample{{X: 100, Y: 200, Intensity: 3}}
	err := scr.Present(samples)
	test.ExpectedSuccess(t, err)

	frame := scr.Latest()

	// the generator clears and refills its list for the next activation
	samples[0] = dvg.Sample{X: 999, Y: 999, Intensity: 15}
	err = scr.Present(samples)
	test.ExpectedSuccess(t, err)

	// the reader's copy of the earlier frame is unchanged
	test.Equate(t, frame[0].X, 100)
	test.Equate(t, frame[0].Y, 200)

	// and the new frame is visible to new readers
	test.Equate(t, scr.Latest()[0].X, 999)
	test.Equate(t, scr.Frames(), uint64(2))
}

// a reader polling Latest while a publisher presents must only ever see
// whole frames. every sample in a frame carries the frame's number so a torn
// read is detectable.
func TestVectorDisplay_concurrentPublish(t *testing.T) {
	scr := display.NewVectorDisplay()

	const numFrames = 1000
	const frameLen = 16

	done := make(chan error)

	go func() {
		samples := make([]dvg.Sample, frameLen)
		for i := 0; i < numFrames; i++ {
			for j := range samples {
				samples[j] = dvg.Sample{X: uint16(i), Y: uint16(j)}
			}
			if err := scr.Present(samples); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for {
		select {
		case err := <-done:
			test.ExpectedSuccess(t, err)
			test.Equate(t, scr.Frames(), uint64(numFrames))
			return
		default:
		}

		frame := scr.Latest()
		if frame == nil {
			continue
		}
		if len(frame) != frameLen {
			t.Fatalf("torn frame: %d samples", len(frame))
		}
		for j, smp := range frame {
			if smp.X != frame[0].X || smp.Y != uint16(j) {
				t.Fatalf("torn frame: sample %d is %s", j, smp.String())
			}
		}
	}
}
