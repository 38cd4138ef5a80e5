// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"gochip8/errors"
)

// Profile selects which profiling artifacts RunProfiler writes alongside a
// performance run. The zero value, NoProfile, writes nothing.
type Profile int

const (
	NoProfile  Profile = 0
	CPUProfile Profile = 1 << 0
	MemProfile Profile = 1 << 1
)

// RunProfiler calls run, optionally wrapped in a CPU profile and followed by
// a heap snapshot, depending on which bits are set in profile. label is used
// as the basename for the generated ".cpu.profile"/".mem.profile" files.
func RunProfiler(profile Profile, label string, run func() error) error {
	if profile&CPUProfile != 0 {
		f, err := os.Create(fmt.Sprintf("%s.cpu.profile", label))
		if err != nil {
			return errors.New(errors.VMError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.New(errors.VMError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&MemProfile != 0 {
		f, ferr := os.Create(fmt.Sprintf("%s.mem.profile", label))
		if ferr != nil {
			return errors.New(errors.VMError, ferr)
		}
		defer f.Close()

		runtime.GC()
		if werr := pprof.WriteHeapProfile(f); werr != nil {
			return errors.New(errors.VMError, werr)
		}
	}

	return err
}

// CalcIPS takes the number of instructions executed and the duration (in
// seconds) they were executed over, and returns the instructions-per-second
// rate along with how close that rate came to the configured target speed,
// as a percentage.
func CalcIPS(numInstructions uint64, duration float64, targetSpeed int) (ips float64, accuracy float64) {
	ips = float64(numInstructions) / duration
	if targetSpeed <= 0 {
		return ips, 100
	}
	accuracy = 100 * ips / float64(targetSpeed)
	return ips, accuracy
}
