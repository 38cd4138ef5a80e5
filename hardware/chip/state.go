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

// Package chip is the base package for the CHIP-8 emulation. It contains the
// Machine State, the Decoder, the Executor and the Timer/Tick driver, plus
// the frontend port interfaces that let a host observe and drive the
// machine without the core depending on any particular display, input or
// audio library.
package chip

const (
	// RAMSize is the size, in bytes, of the addressable memory image.
	RAMSize = 4096

	// ProgramStart is the address at which ROM data is copied and at which
	// PC is set on reset.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that will fit between ProgramStart and
	// the top of RAM, inclusive.
	MaxROMSize = 0xFFF - ProgramStart + 1

	// FontStart is the address at which the built-in font glyphs are loaded.
	FontStart = 0x050

	// DisplayWidth and DisplayHeight are the dimensions, in pixels, of the
	// monochrome framebuffer.
	DisplayWidth  = 64
	DisplayHeight = 32

	// NumRegisters is the number of general purpose V registers, V0..VF.
	NumRegisters = 16

	// NumKeys is the number of keys on the hex keypad.
	NumKeys = 16

	// StackSize is the number of call-stack slots.
	StackSize = 16
)

// State owns all mutable CHIP-8 machine memory: RAM, registers, stack,
// framebuffer, keypad state, timers, PC, I, SP and the draw_flag latch. It
// is pure data — a single owned value passed explicitly into the Executor —
// so that multiple independent VM instances, deterministic tests and safe
// resets are all straightforward.
type State struct {
	RAM [RAMSize]byte

	V  [NumRegisters]byte
	I  uint16
	PC uint16

	Stack [StackSize]uint16
	SP    uint8

	Display [DisplayHeight][DisplayWidth]bool

	// DrawFlag is set whenever the framebuffer has been modified since the
	// host last presented it: on Reset, on CLS, and on DRW. The host clears
	// it after presenting.
	DrawFlag bool

	Keys [NumKeys]bool

	DelayTimer byte
	SoundTimer byte

	// waitingForKey is true while the CPU is suspended inside an Fx0A
	// instruction. Step re-checks the keypad on every call while this is
	// set rather than re-fetching the instruction.
	waitingForKey   bool
	waitingForKeyVx uint8
}

// Reset zeroes all machine state, RAM included (so any loaded ROM image is
// discarded), reloads the font, and sets PC to ProgramStart. Load calls
// Reset itself before copying a new ROM in.
func (s *State) Reset() {
	*s = State{}
	s.PC = ProgramStart
	loadFont(s)
	s.DrawFlag = true
}

// loadFont copies the built-in glyph table into low memory. It is never
// called outside of Reset, and the font block is never written to again —
// invariant 5 of the data model.
func loadFont(s *State) {
	copy(s.RAM[FontStart:FontStart+len(Font)], Font[:])
}

// FramebufferBit returns the current value of the framebuffer pixel at (x,
// y). It is provided for tests and for frontends that want random access
// rather than a full-grid snapshot.
func (s *State) FramebufferBit(x, y int) bool {
	return s.Display[y][x]
}
