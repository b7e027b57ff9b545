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

// Package addresses names the memory-mapped I/O ports of the asteroidino
// board and the meaning of the individual bits on the input port rows.
package addresses

// Write-only I/O ports. Writes to any other address in the IO area are
// ignored.
const (
	// writing to DVGStart activates the vector generator. the low four bits
	// of the written value form the high order bits of the initial program
	// counter
	DVGStart = uint16(0x3000)

	// coin counters and player LEDs
	OutputLatch = uint16(0x3200)

	// any write restarts the hardware watchdog. a no-op in emulation
	WatchdogReset = uint16(0x3400)

	// sound control ports. latched so that the debugger can inspect them but
	// otherwise inert: audio synthesis is not part of this project
	SoundExplosion  = uint16(0x3600)
	SoundThump      = uint16(0x3a00)
	SoundLatchBase  = uint16(0x3c00)
	SoundLatchTop   = uint16(0x3c07)
	SoundNoiseReset = uint16(0x3e00)
)

// Bit positions on the IN0 row. Each logical input is selected by the low
// bits of the read address and reflected into bit 7 of the result.
//
// IN0VGHalt reads high while the vector generator is busy and low once it
// has halted.
const (
	IN0Clock3kHz  = 1
	IN0VGHalt     = 2
	IN0Hyperspace = 3
	IN0Fire       = 4
	IN0DiagStep   = 5
	IN0Tilt       = 6
	IN0SelfTest   = 7
)

// Bit positions on the IN1 row.
const (
	IN1Coin        = 0
	IN1CoinCentre  = 1
	IN1CoinRight   = 2
	IN1Start1      = 3
	IN1Start2      = 4
	IN1Thrust      = 5
	IN1RotateRight = 6
	IN1RotateLeft  = 7
)
