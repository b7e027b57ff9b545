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

package dvg

// Observer is notified at the well-defined points of the generator's
// execution. The debugger attaches an Observer to trace vector programs;
// the core algorithm never depends on one being present.
//
// Implementations run synchronously on the machine goroutine and should
// return quickly.
type Observer interface {
	// ActivationStart is called when a start command is received, before
	// the first micro-cycle runs.
	ActivationStart(pc uint16)

	// HandlerDispatch is called for every strobed micro-cycle, after the
	// handler has run.
	HandlerDispatch(handler int, pc uint16, opcode uint8, data uint8)

	// StackOp is called for every push and pop. ok is false when the
	// operation overflowed or underflowed.
	StackOp(push bool, address uint16, ok bool)

	// ActivationEnd is called when the generator halts, with the number of
	// samples in the completed list and whether the halt was forced by the
	// safety ceiling.
	ActivationEnd(samples int, runaway bool)
}
