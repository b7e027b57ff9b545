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

package input_test

import (
	"testing"

	"github.com/Andretti1967/asteroidino/hardware/input"
	"github.com/Andretti1967/asteroidino/test"
)

func TestPorts_defaults(t *testing.T) {
	prt := input.NewPorts()

	test.Equate(t, prt.IN0(), 0x00)
	test.Equate(t, prt.IN1(), 0x00)
	test.Equate(t, prt.DSW(), input.DefaultDIPs)
}

func TestPorts_rows(t *testing.T) {
	prt := input.NewPorts()

	prt.HandleEvent(input.Fire, true)
	prt.HandleEvent(input.Thrust, true)
	prt.HandleEvent(input.RotateLeft, true)
	prt.Strobe()

	test.Equate(t, prt.IN0(), 0x10)
	test.Equate(t, prt.IN1(), 0xa0)

	prt.HandleEvent(input.Fire, false)
	prt.Strobe()
	test.Equate(t, prt.IN0(), 0x00)
}

// rows are stable between strobes even when the live control state changes.
func TestPorts_strobeSnapshot(t *testing.T) {
	prt := input.NewPorts()

	prt.HandleEvent(input.Start1, true)
	test.Equate(t, prt.IN1(), 0x00)

	prt.Strobe()
	test.Equate(t, prt.IN1(), 0x08)

	prt.HandleEvent(input.Start1, false)
	test.Equate(t, prt.IN1(), 0x08)

	prt.Strobe()
	test.Equate(t, prt.IN1(), 0x00)
}

func TestPorts_dips(t *testing.T) {
	prt := input.NewPorts()

	prt.SetDIPs(0x2d)
	test.Equate(t, prt.DSW(), input.DefaultDIPs)

	prt.Strobe()
	test.Equate(t, prt.DSW(), 0x2d)
}

func TestPorts_badControl(t *testing.T) {
	prt := input.NewPorts()

	// out of range controls are ignored rather than panicking
	prt.HandleEvent(input.Control(-1), true)
	prt.HandleEvent(input.NumControls, true)
	prt.Strobe()
	test.Equate(t, prt.IN0(), 0x00)
	test.Equate(t, prt.IN1(), 0x00)
}
