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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/Andretti1967/asteroidino/curated"
)

// Profile selects which profiles are written by Check.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileBoth
)

// ParseProfile converts a command line profile name.
func ParseProfile(s string) (Profile, bool) {
	switch s {
	case "none":
		return ProfileNone, true
	case "cpu":
		return ProfileCPU, true
	case "mem":
		return ProfileMem, true
	case "both":
		return ProfileBoth, true
	}
	return ProfileNone, false
}

// output file names for the profiles.
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// profileRun runs the benchmark function under the requested profiles.
func profileRun(profile Profile, run func() error) error {
	if profile == ProfileCPU || profile == ProfileBoth {
		f, err := os.Create(cpuProfileFile)
		if err != nil {
			return curated.Errorf(CheckError, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(CheckError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileBoth {
		f, err := os.Create(memProfileFile)
		if err != nil {
			return curated.Errorf(CheckError, err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(CheckError, err)
		}
	}

	return nil
}
