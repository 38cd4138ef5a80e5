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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers, fixed once per process.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Counter is satisfied by anything that can report how many instructions
// have been executed so far. *hardware.VCS implements it; tests can supply a
// literal.
type Counter interface {
	InstructionCount() uint64
}

// Random is a random number generator that is sensitive to the number of
// instructions executed so far. With ZeroSeed set, two runs fed the same ROM
// and the same key input reach the same sequence of RND results up to the
// point they diverge; otherwise the process-wide base seed also differs
// between runs. It implements chip.RNGSource.
type Random struct {
	counter Counter

	// ZeroSeed discards the process-wide base seed, using only the
	// instruction count. Useful for tests that need the same sequence on
	// every run.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter Counter) *Random {
	return &Random{counter: counter}
}

func (rnd *Random) rand() *rand.Rand {
	n := int64(rnd.counter.InstructionCount())
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(n))
	}
	return rand.New(rand.NewSource(baseSeed + n))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// NextU8 returns a pseudo-random byte, implementing chip.RNGSource.
func (rnd *Random) NextU8() uint8 {
	return uint8(rnd.rand().Intn(256))
}
