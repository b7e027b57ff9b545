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
	"github.com/Andretti1967/asteroidino/hardware/input"
	"github.com/veandco/go-sdl2/sdl"
)

// Service runs one iteration of the presentation loop: poll input events,
// strobe the input ports, render the latest frame and wait for the next
// presentation slot. Returns false when the user has asked to quit.
//
// Must be called from the main goroutine, repeatedly, until it returns
// false.
func (gui *SDLVector) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.quit = true

		case *sdl.KeyboardEvent:
			gui.serviceKeyboard(ev)
		}
	}

	// the machine samples control state from the most recent strobe
	gui.ports.Strobe()

	gui.render()
	gui.lmtr.Wait()

	return !gui.quit
}

// serviceKeyboard maps SDL keys onto the cabinet controls.
func (gui *SDLVector) serviceKeyboard(ev *sdl.KeyboardEvent) {
	pressed := ev.Type == sdl.KEYDOWN

	// key repeat must not retrigger a held control
	if ev.Repeat != 0 {
		return
	}

	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		if pressed {
			gui.quit = true
		}

	case sdl.K_LEFT:
		gui.ports.HandleEvent(input.RotateLeft, pressed)
	case sdl.K_RIGHT:
		gui.ports.HandleEvent(input.RotateRight, pressed)
	case sdl.K_UP:
		gui.ports.HandleEvent(input.Thrust, pressed)
	case sdl.K_SPACE:
		gui.ports.HandleEvent(input.Fire, pressed)
	case sdl.K_DOWN:
		gui.ports.HandleEvent(input.Hyperspace, pressed)

	case sdl.K_1:
		gui.ports.HandleEvent(input.Start1, pressed)
	case sdl.K_2:
		gui.ports.HandleEvent(input.Start2, pressed)
	case sdl.K_5:
		gui.ports.HandleEvent(input.Coin, pressed)

	case sdl.K_F1:
		gui.ports.HandleEvent(input.SelfTest, pressed)
	case sdl.K_F2:
		gui.ports.HandleEvent(input.Tilt, pressed)
	}
}
