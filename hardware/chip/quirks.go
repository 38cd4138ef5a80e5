package chip

// Quirks holds the runtime-configurable choices among CHIP-8's documented
// implementation ambiguities. The zero value selects the defaults this
// emulator commits to: CHIP-48/SCHIP shift source, CHIP-48 index behaviour
// on Fx55/Fx65, the classic Bnnn form, and VF-on-overflow for Fx1E.
type Quirks struct {
	// ShiftVyIntoVx selects the original COSMAC VIP behaviour for 8xy6/8xyE
	// (load Vy into Vx before shifting) instead of the CHIP-48 default of
	// shifting Vx in place.
	ShiftVyIntoVx bool

	// IncrementIOnMemOps selects the COSMAC VIP behaviour for Fx55/Fx65 (I
	// += x+1) instead of the CHIP-48 default of leaving I unchanged.
	IncrementIOnMemOps bool

	// JumpVxPlusNN selects the SCHIP Bxnn form (jump to Vx+nn) instead of
	// the classic default of Bnnn jumping to V0+nnn.
	JumpVxPlusNN bool

	// NoVFOnIndexOverflow suppresses the VF-on-overflow behaviour for
	// Fx1E, so I wraps silently instead.
	NoVFOnIndexOverflow bool
}

// DefaultQuirks returns the zero-value Quirks set.
func DefaultQuirks() Quirks {
	return Quirks{}
}
