package main

import (
	"testing"

	"gochip8/hardware"
	"gochip8/hardware/chip"
	"gochip8/random"
)

type benchKeys struct{}

func (benchKeys) KeyDown(uint8) bool        { return false }
func (benchKeys) AnyPressed() (uint8, bool) { return 0, false }

// a tight loop: LD V0, 1 ; ADD V0, V0 ; JP 0x200. Never halts on its own,
// which suits a fixed-count benchmark.
var benchROM = []byte{0x60, 0x01, 0x80, 0x04, 0x12, 0x00}

func BenchmarkStep(b *testing.B) {
	vcs := hardware.NewVCS(chip.DefaultQuirks(), chip.Ports{Keys: benchKeys{}}, nil, nil)
	vcs.Exec.Ports.RNG = random.NewRandom(vcs)

	if err := vcs.State.Load(benchROM); err != nil {
		b.Fatalf("Load: %v", err)
	}

	for i := 0; i < b.N; i++ {
		if _, err := vcs.Step(); err != nil {
			b.Fatalf("Step: %v", err)
		}
	}
}

func BenchmarkRunForInstructionCount(b *testing.B) {
	vcs := hardware.NewVCS(chip.DefaultQuirks(), chip.Ports{Keys: benchKeys{}}, nil, nil)
	vcs.Exec.Ports.RNG = random.NewRandom(vcs)

	if err := vcs.State.Load(benchROM); err != nil {
		b.Fatalf("Load: %v", err)
	}

	if err := vcs.RunForInstructionCount(b.N); err != nil {
		b.Fatalf("RunForInstructionCount: %v", err)
	}
}
