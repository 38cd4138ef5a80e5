package chip

import (
	"gochip8/errors"
)

// StepResult is the outcome of a single Step call.
type StepResult int

const (
	// Ok means one instruction executed normally.
	Ok StepResult = iota

	// WaitingForKey means the CPU is suspended inside an Fx0A instruction;
	// PC has not advanced and the caller should call Step again once a key
	// may have been pressed.
	WaitingForKey
)

// Fault wraps one of the closed errors.Errno fault values. It is returned
// as the error result of Step when execution cannot continue.
type Fault struct {
	errors.GochipError
}

func newFault(errno errors.Errno, values ...interface{}) Fault {
	return Fault{errors.New(errno, values...)}
}

// Executor applies decoded instructions to a State. It holds no state of
// its own beyond the quirks configuration and the frontend ports it calls
// into — it is safe to share a single Executor across many State values as
// long as callers respect the single-threaded cooperative model (no
// concurrent calls to Step on the same State).
type Executor struct {
	Quirks Quirks
	Ports  Ports
}

// NewExecutor constructs an Executor with the given quirks and ports. Both
// Ports.Keys and Ports.RNG must be non-nil.
func NewExecutor(quirks Quirks, ports Ports) *Executor {
	return &Executor{Quirks: quirks, Ports: ports}
}

// Step fetches, decodes and executes exactly one instruction against s. It
// returns (Ok, nil) on normal completion, (WaitingForKey, nil) if execution
// is suspended inside Fx0A, or (Ok, Fault) if the step cannot continue — in
// which case s is left as it was at the point of fault and the caller must
// Reset before stepping again.
func (e *Executor) Step(s *State) (StepResult, error) {
	if s.waitingForKey {
		if key, ok := e.Ports.Keys.AnyPressed(); ok {
			s.V[s.waitingForKeyVx] = key
			s.waitingForKey = false
			s.PC += 2
			return Ok, nil
		}
		return WaitingForKey, nil
	}

	if s.PC > 0xFFE {
		return Ok, newFault(errors.BadPC, s.PC)
	}

	op := uint16(s.RAM[s.PC])<<8 | uint16(s.RAM[s.PC+1])
	in := Decode(op)

	return e.execute(s, in)
}

func (e *Executor) execute(s *State, in Instruction) (StepResult, error) {
	switch in.Op {
	case OpCLS:
		s.Display = [DisplayHeight][DisplayWidth]bool{}
		s.DrawFlag = true
		s.PC += 2

	case OpRET:
		if s.SP == 0 {
			return Ok, newFault(errors.StackUnderflow)
		}
		s.SP--
		s.PC = s.Stack[s.SP]

	case OpSYS:
		// legacy machine-code call, ignored by every modern interpreter.
		s.PC += 2

	case OpJP:
		s.PC = in.NNN

	case OpCALL:
		if s.SP == StackSize {
			return Ok, newFault(errors.StackOverflow, s.SP)
		}
		s.Stack[s.SP] = s.PC + 2
		s.SP++
		s.PC = in.NNN

	case OpSE_VX_KK:
		s.PC += skipDelta(s.V[in.X] == in.KK)

	case OpSNE_VX_KK:
		s.PC += skipDelta(s.V[in.X] != in.KK)

	case OpSE_VX_VY:
		s.PC += skipDelta(s.V[in.X] == s.V[in.Y])

	case OpLD_VX_KK:
		s.V[in.X] = in.KK
		s.PC += 2

	case OpADD_VX_KK:
		s.V[in.X] = s.V[in.X] + in.KK
		s.PC += 2

	case OpLD_VX_VY:
		s.V[in.X] = s.V[in.Y]
		s.PC += 2

	case OpOR:
		s.V[in.X] = s.V[in.X] | s.V[in.Y]
		s.PC += 2

	case OpAND:
		s.V[in.X] = s.V[in.X] & s.V[in.Y]
		s.PC += 2

	case OpXOR:
		s.V[in.X] = s.V[in.X] ^ s.V[in.Y]
		s.PC += 2

	case OpADD_VX_VY:
		sum := uint16(s.V[in.X]) + uint16(s.V[in.Y])
		result := uint8(sum)
		var flag uint8
		if sum > 0xFF {
			flag = 1
		}
		s.V[in.X] = result
		s.V[0xF] = flag
		s.PC += 2

	case OpSUB:
		vx, vy := s.V[in.X], s.V[in.Y]
		result := vx - vy
		var flag uint8
		if vx >= vy {
			flag = 1
		}
		s.V[in.X] = result
		s.V[0xF] = flag
		s.PC += 2

	case OpSHR:
		src := s.V[in.X]
		if e.Quirks.ShiftVyIntoVx {
			src = s.V[in.Y]
		}
		result := src >> 1
		flag := src & 0x1
		s.V[in.X] = result
		s.V[0xF] = flag
		s.PC += 2

	case OpSUBN:
		vx, vy := s.V[in.X], s.V[in.Y]
		result := vy - vx
		var flag uint8
		if vy >= vx {
			flag = 1
		}
		s.V[in.X] = result
		s.V[0xF] = flag
		s.PC += 2

	case OpSHL:
		src := s.V[in.X]
		if e.Quirks.ShiftVyIntoVx {
			src = s.V[in.Y]
		}
		result := src << 1
		flag := (src >> 7) & 0x1
		s.V[in.X] = result
		s.V[0xF] = flag
		s.PC += 2

	case OpSNE_VX_VY:
		s.PC += skipDelta(s.V[in.X] != s.V[in.Y])

	case OpLD_I_NNN:
		s.I = in.NNN
		s.PC += 2

	case OpJP_V0_NNN:
		if e.Quirks.JumpVxPlusNN {
			s.PC = in.NNN + uint16(s.V[in.X])
		} else {
			s.PC = in.NNN + uint16(s.V[0])
		}

	case OpRND:
		s.V[in.X] = e.Ports.RNG.NextU8() & in.KK
		s.PC += 2

	case OpDRW:
		e.drawSprite(s, in)
		s.PC += 2

	case OpSKP:
		s.PC += skipDelta(e.Ports.Keys.KeyDown(s.V[in.X]))

	case OpSKNP:
		s.PC += skipDelta(!e.Ports.Keys.KeyDown(s.V[in.X]))

	case OpLD_VX_DT:
		s.V[in.X] = s.DelayTimer
		s.PC += 2

	case OpLD_VX_K:
		if key, ok := e.Ports.Keys.AnyPressed(); ok {
			s.V[in.X] = key
			s.PC += 2
		} else {
			s.waitingForKey = true
			s.waitingForKeyVx = in.X
			return WaitingForKey, nil
		}

	case OpLD_DT_VX:
		s.DelayTimer = s.V[in.X]
		s.PC += 2

	case OpLD_ST_VX:
		s.SoundTimer = s.V[in.X]
		s.PC += 2

	case OpADD_I_VX:
		sum := uint32(s.I) + uint32(s.V[in.X])
		var flag uint8
		if sum > 0x0FFF {
			flag = 1
		}
		s.I = uint16(sum) & 0x0FFF
		if !e.Quirks.NoVFOnIndexOverflow {
			s.V[0xF] = flag
		}
		s.PC += 2

	case OpLD_F_VX:
		s.I = FontStart + uint16(s.V[in.X]&0x0F)*5
		s.PC += 2

	case OpLD_B_VX:
		vx := s.V[in.X]
		s.RAM[s.I] = vx / 100
		s.RAM[s.I+1] = (vx / 10) % 10
		s.RAM[s.I+2] = vx % 10
		s.PC += 2

	case OpLD_I_VX:
		for i := uint8(0); i <= in.X; i++ {
			s.RAM[s.I+uint16(i)] = s.V[i]
		}
		if e.Quirks.IncrementIOnMemOps {
			s.I += uint16(in.X) + 1
		}
		s.PC += 2

	case OpLD_VX_I:
		for i := uint8(0); i <= in.X; i++ {
			s.V[i] = s.RAM[s.I+uint16(i)]
		}
		if e.Quirks.IncrementIOnMemOps {
			s.I += uint16(in.X) + 1
		}
		s.PC += 2

	case OpIllegal:
		return Ok, newFault(errors.IllegalOpcode, in.Raw)
	}

	return Ok, nil
}

func skipDelta(predicate bool) uint16 {
	if predicate {
		return 4
	}
	return 2
}

// drawSprite implements the Dxyn rasterizer: N bytes read from RAM at I,
// each a row of 8 pixels MSB-first. Starting coordinates wrap modulo the
// display dimensions; per-pixel coordinates clip at the edges rather than
// wrapping.
func (e *Executor) drawSprite(s *State, in Instruction) {
	x0 := int(s.V[in.X]) % DisplayWidth
	y0 := int(s.V[in.Y]) % DisplayHeight

	s.V[0xF] = 0

	for row := 0; row < int(in.N); row++ {
		spriteByte := s.RAM[s.I+uint16(row)]
		y := y0 + row
		if y >= DisplayHeight {
			continue
		}
		for col := 0; col < 8; col++ {
			px := (spriteByte >> (7 - col)) & 0x1
			if px == 0 {
				continue
			}
			x := x0 + col
			if x >= DisplayWidth {
				continue
			}
			if s.Display[y][x] {
				s.V[0xF] = 1
			}
			s.Display[y][x] = !s.Display[y][x]
		}
	}

	s.DrawFlag = true
}
