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

// Package debugger provides a terminal monitor for the emulated board:
// stepping, inspection of the bus and the vector generator, and tracing of
// vector programs as they run.
package debugger

import (
	"bufio"
	"os"
	"strings"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/debugger/easyterm"
	"github.com/Andretti1967/asteroidino/display"
	"github.com/Andretti1967/asteroidino/hardware"
)

// sentinel errors returned by the debugger package.
const (
	UnknownCommand = "debugger: unknown command: %s"
	BadArgument    = "debugger: %s: %v"
)

// Debugger is the terminal monitor.
type Debugger struct {
	ats *hardware.Asteroids
	scr *display.VectorDisplay

	term   easyterm.Terminal
	reader *bufio.Reader

	// tracing observer currently attached to the vector generator. nil
	// when tracing is off
	trace *traceObserver

	// set by the QUIT command
	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(ats *hardware.Asteroids, scr *display.VectorDisplay) (*Debugger, error) {
	dbg := &Debugger{
		ats: ats,
		scr: scr,
	}

	if err := dbg.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.reader = bufio.NewReader(os.Stdin)

	return dbg, nil
}

// Start runs the monitor loop until the QUIT command or the end of input.
func (dbg *Debugger) Start() error {
	defer func() {
		dbg.term.CanonicalMode()
		dbg.term.CleanUp()
	}()

	dbg.term.Print("asteroidino monitor. HELP for commands\n")

	for !dbg.quit {
		dbg.term.Print("[%d] > ", dbg.ats.Instructions())

		line, err := dbg.reader.ReadString('\n')
		if err != nil {
			// end of input is a request to leave, not an error
			dbg.term.Print("\n")
			return nil
		}

		if err := dbg.parseCommand(strings.TrimSpace(line)); err != nil {
			dbg.term.Print("error: %v\n", err)
		}
	}

	return nil
}

// runUntilInterrupt runs the machine freely. Any keypress stops it. The
// terminal is placed in cbreak mode so the keypress doesn't need a newline.
func (dbg *Debugger) runUntilInterrupt() error {
	dbg.term.CBreakMode()
	defer dbg.term.CanonicalMode()

	interrupt := make(chan bool, 1)
	go func() {
		b := make([]byte, 1)
		_, _ = dbg.term.Input().Read(b)
		interrupt <- true
	}()

	dbg.term.Print("running. any key stops\n")

	err := dbg.ats.Run(func() (bool, error) {
		select {
		case <-interrupt:
			return false, nil
		default:
			return true, nil
		}
	})

	_ = dbg.term.Flush()
	return err
}
