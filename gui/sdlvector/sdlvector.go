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

// Package sdlvector renders the vector display through SDL and feeds
// keyboard state back to the input ports.
//
// SDL requires that all of its calls are made from the main OS thread, so
// NewSDLVector and Service must be called from the main goroutine. The
// machine runs elsewhere; it meets this package only through the display
// and input types, which are safe to share.
package sdlvector

import (
	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/display"
	"github.com/Andretti1967/asteroidino/display/limiter"
	"github.com/Andretti1967/asteroidino/hardware/input"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Asteroidino"

// default window size. the playfield is square
const windowSize = 800

// SDLVector is the SDL presentation layer.
type SDLVector struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	scr   *display.VectorDisplay
	ports *input.Ports
	lmtr  *limiter.Limiter

	quit bool
}

// NewSDLVector is the preferred method of initialisation for the SDLVector
// type. Must be called from the main goroutine.
func NewSDLVector(scr *display.VectorDisplay, ports *input.Ports, fps float32) (*SDLVector, error) {
	gui := &SDLVector{
		scr:   scr,
		ports: ports,
		lmtr:  limiter.NewLimiter(fps),
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	var err error
	gui.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowSize, windowSize,
		uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	gui.renderer, err = sdl.CreateRenderer(gui.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	return gui, nil
}

// Destroy releases the SDL resources. Must be called from the main
// goroutine.
func (gui *SDLVector) Destroy() {
	if gui.renderer != nil {
		_ = gui.renderer.Destroy()
	}
	if gui.window != nil {
		_ = gui.window.Destroy()
	}
	sdl.Quit()
}

// SetFPS changes the presentation rate.
func (gui *SDLVector) SetFPS(fps float32) {
	gui.lmtr.SetRate(fps)
}

// FPS returns the most recently measured presentation rate.
func (gui *SDLVector) FPS() float32 {
	return gui.lmtr.Actual()
}
