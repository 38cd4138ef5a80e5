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
	"errors"
	"fmt"
	"io"
	"time"

	"gochip8/cartridgeloader"
	"gochip8/hardware"
	"gochip8/hardware/chip"
)

// sentinal error returned by the Run() loop when the measurement period has
// elapsed normally, as opposed to some genuine emulation fault.
var timedOut = errors.New("performance timed out")

// Check runs the supplied cartridge for a fixed duration and reports the
// number of instructions executed per second, optionally generating a CPU
// or memory profile as directed by profile.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, speed int, duration string) error {
	vcs := hardware.NewVCS(chip.DefaultQuirks(), chip.Ports{
		Keys: noKeys{},
		RNG:  deterministicRNG{},
	}, nil, nil)

	if !uncapped {
		vcs.SetSpeed(speed)
	} else {
		vcs.SetSpeed(0)
	}

	if err := vcs.AttachCartridge(cartload); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startCount, endCount uint64

	runner := func() error {
		timerChan := make(chan bool)

		// a two second leadtime lets any JIT/cache warmup settle before the
		// measurement window starts.
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0
		err := vcs.Run(func() (hardware.RunState, error) {
			for {
				brake++
				if brake >= hardware.PerformanceBrake {
					brake = 0

					select {
					case expired := <-timerChan:
						if expired {
							endCount = vcs.InstructionCount()
							return hardware.Ending, timedOut
						}
						startCount = vcs.InstructionCount()
					default:
						return hardware.Running, nil
					}
				}
				return hardware.Running, nil
			}
		})
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numInstructions := endCount - startCount
	ips, accuracy := CalcIPS(numInstructions, dur.Seconds(), vcs.Speed)
	fmt.Fprintf(output, "%.2f instructions/sec (%d instructions in %.2f seconds) %.1f%% of target\n",
		ips, numInstructions, dur.Seconds(), accuracy)

	return nil
}

// noKeys is a KeySource that never reports a pressed key. Performance
// measurement doesn't care about input; a ROM that blocks on Fx0A simply
// runs the wait-loop, which is representative enough for benchmarking.
type noKeys struct{}

func (noKeys) KeyDown(uint8) bool        { return false }
func (noKeys) AnyPressed() (uint8, bool) { return 0, false }

// deterministicRNG avoids paying for crypto-grade randomness during a
// benchmark; CHIP-8's RND instruction has no accuracy requirement here.
type deterministicRNG struct{}

func (deterministicRNG) NextU8() uint8 { return 0x5A }
