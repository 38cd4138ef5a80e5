package chip_test

import (
	"testing"

	"gochip8/hardware/chip"
)

func TestResetInvariants(t *testing.T) {
	s := &chip.State{}
	s.Reset()

	if s.PC != chip.ProgramStart {
		t.Errorf("PC: got %#04x, want %#04x", s.PC, chip.ProgramStart)
	}
	if s.I != 0 {
		t.Errorf("I: got %#04x, want 0", s.I)
	}
	if s.SP != 0 {
		t.Errorf("SP: got %d, want 0", s.SP)
	}
	if !s.DrawFlag {
		t.Error("DrawFlag: want true after Reset")
	}
	for i, v := range s.V {
		if v != 0 {
			t.Errorf("V[%d]: got %d, want 0", i, v)
		}
	}
	for y := 0; y < chip.DisplayHeight; y++ {
		for x := 0; x < chip.DisplayWidth; x++ {
			if s.FramebufferBit(x, y) {
				t.Fatalf("pixel (%d,%d) set after Reset", x, y)
			}
		}
	}
}

func TestResetLoadsFont(t *testing.T) {
	s := &chip.State{}
	s.Reset()

	for i, want := range chip.Font {
		got := s.RAM[chip.FontStart+i]
		if got != want {
			t.Fatalf("font byte %d: got %#02x, want %#02x", i, got, want)
		}
	}
}

func TestResetClearsProgramRAM(t *testing.T) {
	s := &chip.State{}
	s.RAM[chip.ProgramStart] = 0xAB
	s.Reset()

	if s.RAM[chip.ProgramStart] != 0 {
		t.Errorf("RAM[ProgramStart]: got %#02x, want 0 after Reset", s.RAM[chip.ProgramStart])
	}
}

func TestFramebufferBitMatchesDisplay(t *testing.T) {
	s := &chip.State{}
	s.Reset()
	s.Display[4][7] = true

	if !s.FramebufferBit(7, 4) {
		t.Error("FramebufferBit(7,4): want true")
	}
	if s.FramebufferBit(8, 4) {
		t.Error("FramebufferBit(8,4): want false")
	}
}
