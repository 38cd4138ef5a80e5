package chip_test

import (
	"testing"

	"gochip8/errors"
	"gochip8/hardware/chip"
)

func TestLoadCopiesROMAtProgramStart(t *testing.T) {
	s := &chip.State{}
	rom := []byte{0x12, 0x34, 0x56}

	if err := s.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for i, want := range rom {
		got := s.RAM[chip.ProgramStart+i]
		if got != want {
			t.Errorf("RAM[ProgramStart+%d]: got %#02x, want %#02x", i, got, want)
		}
	}
	if s.PC != chip.ProgramStart {
		t.Errorf("PC: got %#04x, want %#04x", s.PC, chip.ProgramStart)
	}
	if !s.DrawFlag {
		t.Error("DrawFlag: want true after Load")
	}
}

func TestLoadRejectsOversizedROM(t *testing.T) {
	s := &chip.State{}
	rom := make([]byte, chip.MaxROMSize+1)

	err := s.Load(rom)
	if err == nil {
		t.Fatal("expected RomTooLarge fault")
	}
	if !errors.Is(err, errors.RomTooLarge) {
		t.Errorf("expected RomTooLarge, got %v", err)
	}

	// a rejected load still leaves the state freshly reset, not partially
	// loaded.
	if s.PC != chip.ProgramStart {
		t.Errorf("PC: got %#04x, want %#04x", s.PC, chip.ProgramStart)
	}
	for _, b := range s.RAM[chip.ProgramStart:] {
		if b != 0 {
			t.Fatal("RAM beyond ProgramStart is non-zero after a rejected load")
		}
	}
}

func TestLoadAtMaxSizeSucceeds(t *testing.T) {
	s := &chip.State{}
	rom := make([]byte, chip.MaxROMSize)
	for i := range rom {
		rom[i] = byte(i)
	}

	if err := s.Load(rom); err != nil {
		t.Fatalf("Load at MaxROMSize: %v", err)
	}
	if s.RAM[0xFFF] != rom[len(rom)-1] {
		t.Errorf("last byte: got %#02x, want %#02x", s.RAM[0xFFF], rom[len(rom)-1])
	}
}

func TestLoadResetsPriorState(t *testing.T) {
	s := &chip.State{}
	s.V[3] = 0x42
	s.I = 0x500
	s.SP = 2

	if err := s.Load([]byte{0x00, 0xE0}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.V[3] != 0 || s.I != 0 || s.SP != 0 {
		t.Errorf("Load did not reset prior state: V3=%d I=%#04x SP=%d", s.V[3], s.I, s.SP)
	}
}
