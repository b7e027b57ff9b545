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

// Package limiter paces the presentation loop to a requested refresh rate.
package limiter

import (
	"fmt"
	"time"
)

// Limiter regulates how often the presentation loop runs. Create with
// NewLimiter.
type Limiter struct {
	// whether Wait actually waits. can be turned off for benchmarking
	Limit bool

	// the requested number of frames per second
	requested float32

	// actual calculation
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	// channels
	sync    chan bool
	reqRate chan time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		Limit:         true,
		actualRefTime: time.Now(),
		sync:          make(chan bool),
		reqRate:       make(chan time.Duration),
	}

	go func() {
		// new ticker with an arbitrary value. it'll get changed soon enough
		tck := time.NewTicker(1)

		for {
			select {
			case <-tck.C:
				select {
				case lmtr.sync <- true:

				// listen for reqRate signals too while signalling the sync
				// channel. if we don't do this here it's possible for the
				// sync send to deadlock, even with very large buffers on
				// reqRate
				case d := <-lmtr.reqRate:
					tck.Stop()
					tck = time.NewTicker(d)
				}

			// listening here as well keeps response times reasonable when
			// the ticker duration is very long
			case d := <-lmtr.reqRate:
				tck.Stop()
				tck = time.NewTicker(d)
			}
		}
	}()

	lmtr.SetRate(fps)

	return lmtr
}

// SetRate changes the requested refresh rate. Rates of zero or less are
// ignored.
func (lmtr *Limiter) SetRate(fps float32) {
	if fps <= 0 {
		return
	}

	lmtr.requested = fps

	rate, _ := time.ParseDuration(fmt.Sprintf("%fs", float32(1.0)/lmtr.requested))
	lmtr.reqRate <- rate

	lmtr.actualCtTarget = int(lmtr.requested) / 2
	lmtr.actualCt = 0
	lmtr.actualRefTime = time.Now()
}

// Wait blocks until the next presentation slot. Called once per iteration
// of the presentation loop.
func (lmtr *Limiter) Wait() {
	if lmtr.Limit {
		<-lmtr.sync
	}
	lmtr.measureActual()
}

// called every frame to calculate the frame rate actually being achieved.
func (lmtr *Limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		lmtr.actual = float32(lmtr.actualCt) / float32(t.Sub(lmtr.actualRefTime).Seconds())

		// remeasure roughly every second, or every frame when the rate has
		// collapsed below one
		if lmtr.actual > 1 {
			lmtr.actualCtTarget = int(lmtr.actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}

// Requested returns the requested refresh rate.
func (lmtr *Limiter) Requested() float32 {
	return lmtr.requested
}

// Actual returns the most recent measurement of the achieved refresh rate.
func (lmtr *Limiter) Actual() float32 {
	return lmtr.actual
}
