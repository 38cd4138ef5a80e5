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

package hardware_test

import (
	"os"
	"testing"

	"gochip8/cartridgeloader"
	"gochip8/hardware"
	"gochip8/hardware/chip"
)

type stubKeys struct {
	down [chip.NumKeys]bool
}

func (k *stubKeys) KeyDown(i uint8) bool { return k.down[i] }

func (k *stubKeys) AnyPressed() (uint8, bool) {
	for i := uint8(0); i < chip.NumKeys; i++ {
		if k.down[i] {
			return i, true
		}
	}
	return 0, false
}

type stubRNG struct {
	seq []uint8
	pos int
}

func (r *stubRNG) NextU8() uint8 {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.pos%len(r.seq)]
	r.pos++
	return v
}

type spyDisplay struct {
	presented int
	last      [chip.DisplayHeight][chip.DisplayWidth]bool
}

func (d *spyDisplay) Present(display *[chip.DisplayHeight][chip.DisplayWidth]bool) {
	d.presented++
	d.last = *display
}

type spyBeeper struct {
	calls   int
	beeping bool
}

func (b *spyBeeper) SetBeeping(on bool) {
	b.calls++
	b.beeping = on
}

func newTestVCS() (*hardware.VCS, *stubKeys, *spyDisplay, *spyBeeper) {
	keys := &stubKeys{}
	rng := &stubRNG{seq: []uint8{0x00}}
	display := &spyDisplay{}
	beeper := &spyBeeper{}
	vcs := hardware.NewVCS(chip.DefaultQuirks(), chip.Ports{Keys: keys, RNG: rng}, display, beeper)
	return vcs, keys, display, beeper
}

func loadROM(t *testing.T, vcs *hardware.VCS, rom []byte) {
	t.Helper()
	if err := vcs.State.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestStepAdvancesInstructionCount(t *testing.T) {
	vcs, _, _, _ := newTestVCS()
	loadROM(t, vcs, []byte{0x60, 0x05, 0x12, 0x00}) // LD V0, 0x05 ; JP 0x200

	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if vcs.InstructionCount() != 1 {
		t.Errorf("InstructionCount: got %d, want 1", vcs.InstructionCount())
	}
	if vcs.State.V[0] != 0x05 {
		t.Errorf("V0: got %#02x, want 0x05", vcs.State.V[0])
	}
}

func TestStepPresentsOnDrawFlag(t *testing.T) {
	vcs, _, display, _ := newTestVCS()
	// CLS ; JP 0x200
	loadROM(t, vcs, []byte{0x00, 0xE0, 0x12, 0x00})

	presentedAtLoad := display.presented
	if presentedAtLoad != 0 {
		t.Fatalf("display should not be presented until Step is called")
	}

	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if display.presented != 1 {
		t.Errorf("presented: got %d, want 1", display.presented)
	}

	// Next instruction (JP) does not touch the display; no further Present.
	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if display.presented != 1 {
		t.Errorf("presented after non-drawing step: got %d, want 1", display.presented)
	}
}

func TestStepTicksTimersOnSchedule(t *testing.T) {
	vcs, _, _, _ := newTestVCS()
	vcs.SetSpeed(60) // one instruction per tick, to keep the test small
	loadROM(t, vcs, []byte{0x6D, 0x3C, 0x12, 0x00}) // LD VD, 60 ; JP 0x200
	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	vcs.State.DelayTimer = 10

	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if vcs.State.DelayTimer != 9 {
		t.Errorf("DelayTimer after one tick-worth of steps: got %d, want 9", vcs.State.DelayTimer)
	}
}

func TestStepNotifiesBeeperOnChange(t *testing.T) {
	vcs, _, _, beeper := newTestVCS()
	vcs.SetSpeed(60)
	loadROM(t, vcs, []byte{0x6A, 0x01, 0x12, 0x00}) // LD VA, 1 ; JP 0x200
	vcs.State.SoundTimer = 1

	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if beeper.calls != 1 || !beeper.beeping {
		t.Errorf("beeper: got calls=%d beeping=%v, want calls=1 beeping=true", beeper.calls, beeper.beeping)
	}
}

func TestAttachCartridgeLoadsIntoState(t *testing.T) {
	vcs, _, _, _ := newTestVCS()

	dir := t.TempDir()
	path := dir + "/rom.ch8"
	rom := []byte{0x60, 0x42, 0x12, 0x00}
	if err := os.WriteFile(path, rom, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cl := cartridgeloader.NewLoader(path)
	if err := vcs.AttachCartridge(cl); err != nil {
		t.Fatalf("AttachCartridge: %v", err)
	}
	if vcs.State.RAM[chip.ProgramStart] != 0x60 {
		t.Errorf("ROM not loaded at ProgramStart")
	}
}

func TestResetClearsInstructionCount(t *testing.T) {
	vcs, _, _, _ := newTestVCS()
	loadROM(t, vcs, []byte{0x12, 0x00})
	if _, err := vcs.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	vcs.Reset()
	if vcs.InstructionCount() != 0 {
		t.Errorf("InstructionCount after Reset: got %d, want 0", vcs.InstructionCount())
	}
}

func TestRunForInstructionCountSkipsWaitingForKey(t *testing.T) {
	vcs, keys, _, _ := newTestVCS()
	// LD V0, K ; JP 0x200
	loadROM(t, vcs, []byte{0xF0, 0x0A, 0x12, 0x00})
	keys.down[3] = true

	if err := vcs.RunForInstructionCount(1); err != nil {
		t.Fatalf("RunForInstructionCount: %v", err)
	}
	if vcs.State.V[0] != 3 {
		t.Errorf("V0: got %d, want 3", vcs.State.V[0])
	}
}

func TestRunStopsOnEnding(t *testing.T) {
	vcs, _, _, _ := newTestVCS()
	loadROM(t, vcs, []byte{0x12, 0x00})

	calls := 0
	err := vcs.Run(func() (hardware.RunState, error) {
		calls++
		if calls > 3 {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 4 {
		t.Errorf("continueCheck calls: got %d, want 4", calls)
	}
}
