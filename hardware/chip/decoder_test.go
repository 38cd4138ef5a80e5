package chip_test

import (
	"testing"

	"gochip8/hardware/chip"
)

// TestDecoderTotality checks that Decode never panics and always returns a
// variant for the entire 65,536-word space, sampling rather than iterating
// the full range for speed; every table-listed opcode pattern below is
// checked exactly.
func TestDecoderTotality(t *testing.T) {
	for op := 0; op < 0x10000; op += 0x11 {
		in := chip.Decode(uint16(op))
		if in.Raw != uint16(op) {
			t.Fatalf("Decode(%#04x) lost the raw word: got %#04x", op, in.Raw)
		}
	}
}

func TestDecoderIllegalIsCatchAll(t *testing.T) {
	illegal := []uint16{0x5001, 0x8FF8, 0x9001, 0xE000, 0xF0FF}
	for _, op := range illegal {
		in := chip.Decode(op)
		if in.Op != chip.OpIllegal {
			t.Errorf("Decode(%#04x): expected OpIllegal, got %v", op, in.Op)
		}
	}
}

func TestDecoderFields(t *testing.T) {
	in := chip.Decode(0xD3B7)
	if in.X != 0x3 {
		t.Errorf("X: got %d, want 3", in.X)
	}
	if in.Y != 0xB {
		t.Errorf("Y: got %d, want 0xB", in.Y)
	}
	if in.N != 0x7 {
		t.Errorf("N: got %d, want 7", in.N)
	}
	if in.Op != chip.OpDRW {
		t.Errorf("Op: got %v, want OpDRW", in.Op)
	}
}

func TestDecoderOpcodeTable(t *testing.T) {
	cases := []struct {
		op   uint16
		want chip.Opcode
	}{
		{0x00E0, chip.OpCLS},
		{0x00EE, chip.OpRET},
		{0x0123, chip.OpSYS},
		{0x1234, chip.OpJP},
		{0x2345, chip.OpCALL},
		{0x3012, chip.OpSE_VX_KK},
		{0x4012, chip.OpSNE_VX_KK},
		{0x5010, chip.OpSE_VX_VY},
		{0x6012, chip.OpLD_VX_KK},
		{0x7012, chip.OpADD_VX_KK},
		{0x8010, chip.OpLD_VX_VY},
		{0x8011, chip.OpOR},
		{0x8012, chip.OpAND},
		{0x8013, chip.OpXOR},
		{0x8014, chip.OpADD_VX_VY},
		{0x8015, chip.OpSUB},
		{0x8016, chip.OpSHR},
		{0x8017, chip.OpSUBN},
		{0x801E, chip.OpSHL},
		{0x9010, chip.OpSNE_VX_VY},
		{0xA123, chip.OpLD_I_NNN},
		{0xB123, chip.OpJP_V0_NNN},
		{0xC012, chip.OpRND},
		{0xD015, chip.OpDRW},
		{0xE09E, chip.OpSKP},
		{0xE0A1, chip.OpSKNP},
		{0xF007, chip.OpLD_VX_DT},
		{0xF00A, chip.OpLD_VX_K},
		{0xF015, chip.OpLD_DT_VX},
		{0xF018, chip.OpLD_ST_VX},
		{0xF01E, chip.OpADD_I_VX},
		{0xF029, chip.OpLD_F_VX},
		{0xF033, chip.OpLD_B_VX},
		{0xF055, chip.OpLD_I_VX},
		{0xF065, chip.OpLD_VX_I},
	}

	for _, c := range cases {
		got := chip.Decode(c.op).Op
		if got != c.want {
			t.Errorf("Decode(%#04x).Op: got %v, want %v", c.op, got, c.want)
		}
	}
}
