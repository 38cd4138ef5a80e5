package chip

import "gochip8/errors"

// Load resets the machine state, reloads the font, and copies rom into RAM
// starting at ProgramStart. It fails with errors.RomTooLarge if rom is
// larger than MaxROMSize; the state is left freshly reset (not partially
// loaded) in that case.
func (s *State) Load(rom []byte) error {
	s.Reset()

	if len(rom) > MaxROMSize {
		return errors.New(errors.RomTooLarge, len(rom), MaxROMSize)
	}

	copy(s.RAM[ProgramStart:], rom)
	s.DrawFlag = true

	return nil
}
