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

package hardware

import "gochip8/hardware/chip"

// RunState describes what the driver loop should do next. It is
// deliberately small compared to a full debugger's run-state machine:
// this package only needs to know whether to keep stepping.
type RunState int

const (
	// Running means keep calling Step.
	Running RunState = iota

	// Paused means suspend stepping without unwinding the loop; the
	// continueCheck function will be polled again on the next iteration.
	Paused

	// Ending means stop the loop and return cleanly.
	Ending
)

// PerformanceBrake is the number of continueCheck calls that
// performance.Check lets pass between polls of its measurement timer.
const PerformanceBrake = 10000

// Run steps the VCS continuously, calling continueCheck before every
// instruction to decide whether to keep going. continueCheck returning
// Ending stops the loop; Paused causes Run to call continueCheck again
// straight away without stepping or pacing, so the loop spins for as long
// as continueCheck keeps returning Paused without blocking.
//
// Unlike Step, Run paces itself against real time: instructionLimiter holds
// it to vcs.Speed instructions per second, and timerLimiter ticks the 60Hz
// timers independently of how many instructions have actually run, so that
// a stalled instruction stream (e.g. parked in WaitingForKey) doesn't also
// stall the timers.
func (vcs *VCS) Run(continueCheck func() (RunState, error)) error {
	for {
		state, err := continueCheck()
		if err != nil {
			return err
		}

		switch state {
		case Ending:
			return nil
		case Paused:
			continue
		}

		vcs.checkSingleThreaded()

		if vcs.timerLimiter.HasWaited() {
			vcs.State.TickTimers()
		}

		vcs.instructionLimiter.Wait()

		result, err := vcs.stepOne()
		if err != nil {
			return err
		}
		if result == chip.WaitingForKey {
			continue
		}
	}
}

// RunForInstructionCount steps the VCS exactly n times, stopping early (and
// returning the fault) if Step returns an error. WaitingForKey does not
// count as a step executed — the loop keeps polling until a key arrives or
// n steps have actually completed.
func (vcs *VCS) RunForInstructionCount(n int) error {
	for i := 0; i < n; {
		result, err := vcs.Step()
		if err != nil {
			return err
		}
		if result == chip.WaitingForKey {
			continue
		}
		i++
	}
	return nil
}
