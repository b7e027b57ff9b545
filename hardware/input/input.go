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

// Package input collects the state of the cabinet controls and presents it
// as the three input rows the bus reads: IN0 for the player buttons and
// status switches, IN1 for the coin and movement switches and DSW for the
// option DIPs.
//
// Control state arrives asynchronously from the GUI goroutine through the
// HandleEvent function. The machine samples the rows on every instruction
// so the rows are built from a snapshot taken with Strobe, keeping the view
// of the controls stable across the reads of a single instruction.
package input

import (
	"sync"

	"github.com/Andretti1967/asteroidino/hardware/memory/addresses"
)

// Control identifies a single cabinet switch.
type Control int

// List of valid Control values.
const (
	Hyperspace Control = iota
	Fire
	DiagStep
	Tilt
	SelfTest
	Coin
	CoinCentre
	CoinRight
	Start1
	Start2
	Thrust
	RotateRight
	RotateLeft
	NumControls
)

func (c Control) String() string {
	switch c {
	case Hyperspace:
		return "hyperspace"
	case Fire:
		return "fire"
	case DiagStep:
		return "diagnostic step"
	case Tilt:
		return "tilt"
	case SelfTest:
		return "self test"
	case Coin:
		return "coin left"
	case CoinCentre:
		return "coin centre"
	case CoinRight:
		return "coin right"
	case Start1:
		return "start 1"
	case Start2:
		return "start 2"
	case Thrust:
		return "thrust"
	case RotateRight:
		return "rotate right"
	case RotateLeft:
		return "rotate left"
	}
	return "unknown"
}

// DefaultDIPs is the factory option setting: English language, one coin one
// play, three ships.
const DefaultDIPs = uint8(0x84)

// Ports holds the live state of the cabinet controls. The zero value is not
// usable; use NewPorts.
type Ports struct {
	crit sync.Mutex

	held [NumControls]bool
	dips uint8

	// snapshot of the rows as of the last Strobe
	in0 uint8
	in1 uint8
	dsw uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	prt := &Ports{
		dips: DefaultDIPs,
	}
	prt.Strobe()
	return prt
}

// HandleEvent records a control being pressed or released. Safe for use
// from goroutines other than the machine goroutine.
func (prt *Ports) HandleEvent(control Control, pressed bool) {
	if control < 0 || control >= NumControls {
		return
	}
	prt.crit.Lock()
	defer prt.crit.Unlock()
	prt.held[control] = pressed
}

// SetDIPs replaces the option switch byte.
func (prt *Ports) SetDIPs(dips uint8) {
	prt.crit.Lock()
	defer prt.crit.Unlock()
	prt.dips = dips
}

// Strobe takes a snapshot of the control state. The IN0, IN1 and DSW rows
// reflect the most recent snapshot, not the live state. Called by the
// machine at instruction boundaries.
func (prt *Ports) Strobe() {
	prt.crit.Lock()
	defer prt.crit.Unlock()

	var in0, in1 uint8

	if prt.held[Hyperspace] {
		in0 |= 1 << addresses.IN0Hyperspace
	}
	if prt.held[Fire] {
		in0 |= 1 << addresses.IN0Fire
	}
	if prt.held[DiagStep] {
		in0 |= 1 << addresses.IN0DiagStep
	}
	if prt.held[Tilt] {
		in0 |= 1 << addresses.IN0Tilt
	}
	if prt.held[SelfTest] {
		in0 |= 1 << addresses.IN0SelfTest
	}

	if prt.held[Coin] {
		in1 |= 1 << addresses.IN1Coin
	}
	if prt.held[CoinCentre] {
		in1 |= 1 << addresses.IN1CoinCentre
	}
	if prt.held[CoinRight] {
		in1 |= 1 << addresses.IN1CoinRight
	}
	if prt.held[Start1] {
		in1 |= 1 << addresses.IN1Start1
	}
	if prt.held[Start2] {
		in1 |= 1 << addresses.IN1Start2
	}
	if prt.held[Thrust] {
		in1 |= 1 << addresses.IN1Thrust
	}
	if prt.held[RotateRight] {
		in1 |= 1 << addresses.IN1RotateRight
	}
	if prt.held[RotateLeft] {
		in1 |= 1 << addresses.IN1RotateLeft
	}

	prt.in0 = in0
	prt.in1 = in1
	prt.dsw = prt.dips
}

// IN0 implements the memory.InputPorts interface.
func (prt *Ports) IN0() uint8 {
	prt.crit.Lock()
	defer prt.crit.Unlock()
	return prt.in0
}

// IN1 implements the memory.InputPorts interface.
func (prt *Ports) IN1() uint8 {
	prt.crit.Lock()
	defer prt.crit.Unlock()
	return prt.in1
}

// DSW implements the memory.InputPorts interface.
func (prt *Ports) DSW() uint8 {
	prt.crit.Lock()
	defer prt.crit.Unlock()
	return prt.dsw
}
