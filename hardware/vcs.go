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

import (
	"fmt"

	"gochip8/assert"
	"gochip8/cartridgeloader"
	"gochip8/hardware/chip"
	"gochip8/performance/limiter"
)

// DefaultInstructionsPerSecond is the instruction rate used when Speed is
// left at zero. 700 is the figure most CHIP-8 ROMs of the era were tuned
// against; it is fast enough to feel responsive and slow enough that the
// classic timing-sensitive ROMs behave as their authors expected.
const DefaultInstructionsPerSecond = 700

// TimerRate is fixed by the CHIP-8 architecture: DelayTimer and SoundTimer
// always count down at 60Hz, independent of the CPU's instruction rate.
const TimerRate = 60

// VCS is the main container for the emulated machine: the chip.State it
// owns, the chip.Executor that advances it, and the pacing/presentation
// glue that turns "run as many instructions as possible" into "run at the
// rate a human watching the screen expects".
type VCS struct {
	State *chip.State
	Exec  *chip.Executor

	Display chip.DisplaySink
	Beeper  chip.BeeperSink

	// Speed is the target instruction rate, in instructions per second. Zero
	// means DefaultInstructionsPerSecond.
	Speed int

	// instructionLimiter and timerLimiter pace Run's calls to Step and
	// TickTimers against the wall clock. RunForInstructionCount and the
	// unit tests in this package bypass both — they drive the count-based
	// schedule in instructionsPerTick/sinceTick instead, so that tests
	// never have to wait on real time.
	instructionLimiter *limiter.FpsLimiter
	timerLimiter       *limiter.FpsLimiter

	instructionCount    uint64
	instructionsPerTick int
	sinceTick           int
	beeping             bool

	// driverGoRoutine records which goroutine first called stepOne or
	// TickTimers, so checkSingleThreaded can catch a caller that violates
	// the single-threaded cooperative model this package requires of
	// chip.State.
	driverGoRoutine uint64
}

// checkSingleThreaded panics if called from a different goroutine than the
// one that first drove this VCS. It is a debugging aid, not part of the
// ordinary control flow.
func (vcs *VCS) checkSingleThreaded() {
	id := assert.GetGoRoutineID()
	if vcs.driverGoRoutine == 0 {
		vcs.driverGoRoutine = id
		return
	}
	if vcs.driverGoRoutine != id {
		panic(fmt.Sprintf("hardware: VCS driven from goroutine %d after being driven from goroutine %d", id, vcs.driverGoRoutine))
	}
}

// NewVCS creates a new VCS with a freshly reset chip.State. display and
// beeper may be nil, in which case DrawFlag/SoundTimer changes are simply
// not observed by anything — the headless case.
func NewVCS(quirks chip.Quirks, ports chip.Ports, display chip.DisplaySink, beeper chip.BeeperSink) *VCS {
	timerLimiter, _ := limiter.NewFPSLimiter(TimerRate)

	vcs := &VCS{
		State:        &chip.State{},
		Exec:         chip.NewExecutor(quirks, ports),
		Display:      display,
		Beeper:       beeper,
		timerLimiter: timerLimiter,
	}
	vcs.State.Reset()
	vcs.SetSpeed(0)
	return vcs
}

// SetSpeed changes the target instruction rate. A value of zero or less
// resets it to DefaultInstructionsPerSecond.
func (vcs *VCS) SetSpeed(instructionsPerSecond int) {
	if instructionsPerSecond <= 0 {
		instructionsPerSecond = DefaultInstructionsPerSecond
	}
	vcs.Speed = instructionsPerSecond

	vcs.instructionsPerTick = instructionsPerSecond / TimerRate
	if vcs.instructionsPerTick < 1 {
		vcs.instructionsPerTick = 1
	}
	vcs.sinceTick = 0

	if vcs.instructionLimiter == nil {
		vcs.instructionLimiter, _ = limiter.NewFPSLimiter(instructionsPerSecond)
	} else {
		vcs.instructionLimiter.SetLimit(instructionsPerSecond)
	}
}

// InstructionCount returns the total number of instructions executed since
// the VCS was created or last Reset. It implements random.Counter, so the
// RND instruction's seed advances deterministically with emulation
// progress rather than wall-clock time.
func (vcs *VCS) InstructionCount() uint64 {
	return vcs.instructionCount
}

// AttachCartridge loads a ROM via loader and resets the machine to run it.
func (vcs *VCS) AttachCartridge(loader cartridgeloader.Loader) error {
	if err := loader.Load(); err != nil {
		return err
	}
	return vcs.State.Load(loader.Data)
}

// Reset reinitialises the machine state, discarding the loaded ROM image
// along with it. Callers that want to keep the ROM loaded should reattach
// via AttachCartridge instead.
func (vcs *VCS) Reset() {
	vcs.State.Reset()
	vcs.instructionCount = 0
	vcs.sinceTick = 0
	vcs.beeping = false
}
