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

import (
	"fmt"
	"strings"
)

// StackDepth is the subroutine nesting capacity of the vector generator.
// The real hardware has a four-deep address stack.
const StackDepth = 4

// controlStack is the generator's subroutine return stack. Overflow and
// underflow are bounded faults rather than errors: an overflowing push is
// dropped so entries within capacity are never corrupted, and an
// underflowing pop leaves the program counter untouched. Both are counted
// for the diagnostics surface.
type controlStack struct {
	entries [StackDepth]uint16
	sp      int

	overflows  int
	underflows int
}

// reset empties the stack. The fault counters are preserved: they count
// events since creation, not since the last activation.
func (stk *controlStack) reset() {
	stk.sp = 0
}

// push adds a return address. Returns false if the stack was full, in which
// case the address is dropped.
func (stk *controlStack) push(address uint16) bool {
	if stk.sp >= StackDepth {
		stk.overflows++
		return false
	}
	stk.entries[stk.sp] = address
	stk.sp++
	return true
}

// pop removes and returns the most recent return address. Returns false if
// the stack was empty.
func (stk *controlStack) pop() (uint16, bool) {
	if stk.sp <= 0 {
		stk.underflows++
		return 0, false
	}
	stk.sp--
	return stk.entries[stk.sp], true
}

// depth returns the number of entries currently on the stack.
func (stk *controlStack) depth() int {
	return stk.sp
}

func (stk *controlStack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("stack: %d/%d", stk.sp, StackDepth))
	for i := 0; i < stk.sp; i++ {
		s.WriteString(fmt.Sprintf(" [%03x]", stk.entries[i]))
	}
	if stk.overflows > 0 || stk.underflows > 0 {
		s.WriteString(fmt.Sprintf(" (overflows %d, underflows %d)", stk.overflows, stk.underflows))
	}
	return s.String()
}
