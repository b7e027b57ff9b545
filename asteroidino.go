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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Andretti1967/asteroidino/debugger"
	"github.com/Andretti1967/asteroidino/display"
	"github.com/Andretti1967/asteroidino/gui/sdlvector"
	"github.com/Andretti1967/asteroidino/hardware"
	"github.com/Andretti1967/asteroidino/hardware/memory/addresses"
	"github.com/Andretti1967/asteroidino/hardware/memory/memorymap"
	"github.com/Andretti1967/asteroidino/logger"
	"github.com/Andretti1967/asteroidino/modalflag"
	"github.com/Andretti1967/asteroidino/performance"
	"github.com/Andretti1967/asteroidino/romset"
	"github.com/Andretti1967/asteroidino/statsview"
)

// communication between the main() function and the launch() goroutine.
// SDL requires that window creation and event handling happen on the main
// thread, so the launch goroutine sends a creation function over and waits
// for the result.
type mainSync struct {
	creator       chan func() (*sdlvector.SDLVector, error)
	creation      chan *sdlvector.SDLVector
	creationError chan error

	// quit request with exit value
	quit chan int
}

// #mainthread
func main() {
	sync := &mainSync{
		creator:       make(chan func() (*sdlvector.SDLVector, error)),
		creation:      make(chan *sdlvector.SDLVector),
		creationError: make(chan error),
		quit:          make(chan int),
	}

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := 0
	var gui *sdlvector.SDLVector

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- g
			}

		case v := <-sync.quit:
			exitVal = v
			done = true

		default:
			if gui != nil {
				if !gui.Service() {
					done = true
				}
			} else {
				// nothing to service yet
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	if gui != nil {
		gui.Destroy()
	}
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. it owns the machine; the
// main goroutine owns the GUI.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// newMachine builds the board from a romset directory, or with blank ROMs
// when no directory is given.
func newMachine(romDir string, scr *display.VectorDisplay) (*hardware.Asteroids, error) {
	var prog, vec []uint8

	if romDir != "" {
		set, err := romset.Load(romDir)
		if err != nil {
			return nil, err
		}
		prog = set.Program
		vec = set.Vector
	} else {
		prog = make([]uint8, memorymap.SizeProgramROM)
		vec = make([]uint8, memorymap.SizeVectorROM)
	}

	ats, err := hardware.NewAsteroids(prog, vec, scr)
	if err != nil {
		return nil, err
	}

	// until a CPU is attached nothing will build display lists in vector
	// RAM, so install the demo list for the generator to chew on
	for i, b := range romset.DemoProgram() {
		ats.Mem.Poke(uint16(0x4000+i), b)
	}

	return ats, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	romDir := md.AddString("rom", "", "directory containing the romset")
	fps := md.AddFloat64("fps", 60.0, "target refresh rate")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	scr := display.NewVectorDisplay()
	ats, err := newMachine(*romDir, scr)
	if err != nil {
		return err
	}

	sync.creator <- func() (*sdlvector.SDLVector, error) {
		return sdlvector.NewSDLVector(scr, ats.Ports, float32(*fps))
	}
	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// the stepping loop. with no CPU attached the display list never
	// changes, so the loop amounts to restarting the generator through the
	// bus once per frame
	tck := time.NewTicker(time.Duration(float64(time.Second) / *fps))
	for range tck.C {
		ats.Mem.Write(addresses.DVGStart, 0x00)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	romDir := md.AddString("rom", "", "directory containing the romset")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	scr := display.NewVectorDisplay()
	ats, err := newMachine(*romDir, scr)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(ats, scr)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddString("profile", "none", "profile data to generate: none, cpu, mem, both")
	duration := md.AddString("duration", "5s", "run duration")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, ok := performance.ParseProfile(*profile)
	if !ok {
		return fmt.Errorf("unknown profile type: %s", *profile)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, prf, *duration)
}
