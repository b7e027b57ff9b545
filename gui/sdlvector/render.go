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

package sdlvector

import (
	"github.com/Andretti1967/asteroidino/hardware/dvg"
)

// render draws the latest complete frame. The frame is a beam path: a line
// is drawn from each sample to the next at the next sample's intensity,
// with intensity zero being a blanked repositioning of the beam.
func (gui *SDLVector) render() {
	_ = gui.renderer.SetDrawColor(0, 0, 0, 255)
	_ = gui.renderer.Clear()

	frame := gui.scr.Latest()
	if frame != nil {
		w, h := gui.window.GetSize()

		// beam starts every frame at the centre of the playfield
		px, py := scaleSample(dvg.Sample{X: 512, Y: 512}, w, h)

		for _, smp := range frame {
			x, y := scaleSample(smp, w, h)
			if smp.Intensity > 0 {
				b := brightness(smp.Intensity)
				_ = gui.renderer.SetDrawColor(b, b, b, 255)
				_ = gui.renderer.DrawLine(px, py, x, y)
			}
			px, py = x, y
		}
	}

	gui.renderer.Present()
}

// scaleSample maps playfield coordinates onto the window. The playfield's y
// axis points up, SDL's points down.
func scaleSample(smp dvg.Sample, w int32, h int32) (int32, int32) {
	x := int32(smp.X) * w / (dvg.MaxAxis + 1)
	y := h - 1 - int32(smp.Y)*h/(dvg.MaxAxis+1)
	return x, y
}

// brightness converts the 4-bit beam intensity into a grey level.
func brightness(intensity uint8) uint8 {
	b := int(intensity&0x0f)*16 + 15
	return uint8(b)
}
