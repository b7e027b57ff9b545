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

package debugger

import (
	"os"
	"strconv"
	"strings"

	"github.com/Andretti1967/asteroidino/curated"
	"github.com/Andretti1967/asteroidino/logger"
	"github.com/bradleyjkemp/memviz"
)

// the commands understood by the monitor, with one line of help each.
var commandHelp = []string{
	"HELP             this",
	"QUIT             leave the monitor",
	"RESET            power-cycle the board",
	"STEP [n]         execute n instructions (default 1)",
	"RUN              run freely. any key stops",
	"GO [page]        start the vector generator at a display list page",
	"PEEK addr        read a bus address (hex)",
	"POKE addr val    write a bus address (hex), bypassing ROM protection",
	"DVG              vector generator state",
	"STACK            vector generator stack faults",
	"VECTORS [n]      first n samples of the latest frame (default 10)",
	"TRACE            toggle vector program tracing",
	"LOG              recent log entries",
	"MEMVIZ file      dot graph of the machine state to file",
}

func (dbg *Debugger) parseCommand(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "HELP":
		for _, h := range commandHelp {
			dbg.term.Print("%s\n", h)
		}

	case "QUIT":
		dbg.quit = true

	case "RESET":
		return dbg.ats.Reset()

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf(BadArgument, command, err)
			}
		}
		for i := 0; i < n; i++ {
			if err := dbg.ats.Step(); err != nil {
				return err
			}
		}

	case "RUN":
		return dbg.runUntilInterrupt()

	case "GO":
		page := uint64(0)
		if len(args) > 0 {
			var err error
			page, err = strconv.ParseUint(args[0], 16, 4)
			if err != nil {
				return curated.Errorf(BadArgument, command, err)
			}
		}
		dbg.ats.DVG.Activate(uint8(page))
		dbg.term.Print("%s\n", dbg.ats.DVG.String())

	case "PEEK":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, command, "address required")
		}
		address, err := strconv.ParseUint(args[0], 16, 16)
		if err != nil {
			return curated.Errorf(BadArgument, command, err)
		}
		dbg.term.Print("%04x = %02x\n", address, dbg.ats.Mem.Peek(uint16(address)))

	case "POKE":
		if len(args) != 2 {
			return curated.Errorf(BadArgument, command, "address and value required")
		}
		address, err := strconv.ParseUint(args[0], 16, 16)
		if err != nil {
			return curated.Errorf(BadArgument, command, err)
		}
		value, err := strconv.ParseUint(args[1], 16, 8)
		if err != nil {
			return curated.Errorf(BadArgument, command, err)
		}
		dbg.ats.Mem.Poke(uint16(address), uint8(value))

	case "DVG":
		dbg.term.Print("%s\n", dbg.ats.DVG.String())

	case "STACK":
		overflows, underflows := dbg.ats.DVG.StackDiagnostics()
		dbg.term.Print("depth %d, overflows %d, underflows %d\n",
			dbg.ats.DVG.StackDepthNow(), overflows, underflows)

	case "VECTORS":
		n := 10
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf(BadArgument, command, err)
			}
		}
		frame := dbg.scr.Latest()
		if frame == nil {
			dbg.term.Print("no frame yet\n")
			break
		}
		dbg.term.Print("%d samples in frame %d\n", len(frame), dbg.scr.Frames())
		for i := 0; i < n && i < len(frame); i++ {
			dbg.term.Print("  %3d: %s\n", i, frame[i].String())
		}

	case "TRACE":
		if dbg.trace == nil {
			dbg.trace = &traceObserver{dbg: dbg}
			dbg.ats.DVG.Attach(dbg.trace)
			dbg.term.Print("tracing on\n")
		} else {
			dbg.trace = nil
			dbg.ats.DVG.Attach(nil)
			dbg.term.Print("tracing off\n")
		}

	case "LOG":
		logger.Tail(os.Stdout, 20)

	case "MEMVIZ":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, command, "output file required")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, command, err)
		}
		defer f.Close()
		memviz.Map(f, dbg.ats)
		dbg.term.Print("written %s\n", args[0])

	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

// traceObserver prints the vector generator's progress to the terminal.
//
// Implements the dvg.Observer interface.
type traceObserver struct {
	dbg *Debugger
}

func (obs *traceObserver) ActivationStart(pc uint16) {
	obs.dbg.term.Print("dvg: start %03x\n", pc)
}

func (obs *traceObserver) HandlerDispatch(handler int, pc uint16, opcode uint8, data uint8) {
	obs.dbg.term.Print("dvg: h%d pc=%03x op=%x data=%02x\n", handler, pc, opcode, data)
}

func (obs *traceObserver) StackOp(push bool, address uint16, ok bool) {
	op := "pop"
	if push {
		op = "push"
	}
	if !ok {
		op += " (fault)"
	}
	obs.dbg.term.Print("dvg: %s %03x\n", op, address)
}

func (obs *traceObserver) ActivationEnd(samples int, runaway bool) {
	if runaway {
		obs.dbg.term.Print("dvg: runaway, %d samples\n", samples)
		return
	}
	obs.dbg.term.Print("dvg: halt, %d samples\n", samples)
}
