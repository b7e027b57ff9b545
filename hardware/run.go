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

package hardware

// number of instructions between calls to the continue check. stepping is
// cheap and the check may cross a channel so it isn't consulted on every
// instruction.
const checkInterval = 64

// Run steps the machine until the continueCheck callback returns false or
// an error. A nil continueCheck runs forever (or until a stepping error).
func (ats *Asteroids) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		for i := 0; i < checkInterval; i++ {
			if err := ats.Step(); err != nil {
				return err
			}
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
