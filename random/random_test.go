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

package random_test

import (
	"testing"

	"gochip8/random"
)

type fixedCounter uint64

func (c fixedCounter) InstructionCount() uint64 { return uint64(c) }

func TestZeroSeedIsReproducible(t *testing.T) {
	a := random.NewRandom(fixedCounter(100))
	b := random.NewRandom(fixedCounter(100))
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		av, bv := a.Intn(i), b.Intn(i)
		if av != bv {
			t.Fatalf("Intn(%d): a=%d b=%d, want equal under ZeroSeed", i, av, bv)
		}
	}
}

func TestNextU8IsWithinByteRange(t *testing.T) {
	r := random.NewRandom(fixedCounter(0))
	r.ZeroSeed = true

	for i := 0; i < 1000; i++ {
		_ = r.NextU8() // the return type already proves the range; this just exercises many draws
	}
}

func TestDifferentCountersDiverge(t *testing.T) {
	a := random.NewRandom(fixedCounter(1))
	b := random.NewRandom(fixedCounter(2))
	a.ZeroSeed = true
	b.ZeroSeed = true

	same := true
	for i := 0; i < 32; i++ {
		if a.NextU8() != b.NextU8() {
			same = false
			break
		}
	}
	if same {
		t.Error("expected sequences from different counters to diverge within 32 draws")
	}
}
