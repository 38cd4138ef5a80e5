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

// Step executes exactly one CHIP-8 instruction, ticks the 60Hz timers
// whenever instructionsPerTick instructions have elapsed, and presents the
// framebuffer/beeper state to the attached sinks whenever they change. It
// returns the chip.StepResult reported by the underlying Executor —
// WaitingForKey included — so that a driver loop can distinguish "nothing
// more to do until a key is pressed" from a genuine fault.
//
// The timer cadence here is counted in instructions rather than wall-clock
// time, which makes Step deterministic and safe to call in a tight loop
// with no real pacing — see RunForInstructionCount. Run paces the
// equivalent work against real time instead, using stepOne and its own
// limiter.FpsLimiter pair.
//
// Step must not be called concurrently with itself or with TickTimers; see
// the single-threaded cooperative model documented on chip.State.TickTimers.
func (vcs *VCS) Step() (chip.StepResult, error) {
	result, err := vcs.stepOne()
	if err != nil || result == chip.WaitingForKey {
		return result, err
	}

	vcs.sinceTick++
	if vcs.sinceTick >= vcs.instructionsPerTick {
		vcs.sinceTick = 0
		vcs.State.TickTimers()
	}

	return result, nil
}

// stepOne fetches, decodes and executes a single instruction, advances
// instructionCount, and presents any resulting display/beeper change. It
// does not touch the timers — callers decide the tick cadence themselves.
func (vcs *VCS) stepOne() (chip.StepResult, error) {
	vcs.checkSingleThreaded()

	result, err := vcs.Exec.Step(vcs.State)
	if err != nil {
		return result, err
	}

	if result == chip.WaitingForKey {
		return result, nil
	}

	vcs.instructionCount++
	vcs.present()

	return result, nil
}

// present notifies Display and Beeper of any changes since the last call.
// It is idempotent: calling it when nothing has changed is a cheap no-op.
func (vcs *VCS) present() {
	if vcs.State.DrawFlag {
		if vcs.Display != nil {
			vcs.Display.Present(&vcs.State.Display)
		}
		vcs.State.DrawFlag = false
	}

	if vcs.Beeper != nil {
		beeping := vcs.State.Beeping()
		if beeping != vcs.beeping {
			vcs.beeping = beeping
			vcs.Beeper.SetBeeping(beeping)
		}
	}
}
