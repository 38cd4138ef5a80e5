package chip

// TickTimers decrements DelayTimer and SoundTimer by one each, saturating
// at zero. It is independent of Step: the host schedules it at 60 Hz on
// its own cadence and must not call it concurrently with itself or with
// Step on the same State.
func (s *State) TickTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// Beeping reports whether the beeper should currently be sounding.
func (s *State) Beeping() bool {
	return s.SoundTimer > 0
}
