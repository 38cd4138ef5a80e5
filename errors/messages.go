package errors

var messages = map[Errno]string{
	RomTooLarge:    "rom too large (%d bytes, maximum is %d)",
	RomReadFailed:  "failed to read rom: %v",
	StackOverflow:  "stack overflow: call at full stack (sp=%d)",
	StackUnderflow: "stack underflow: return with empty stack",
	BadPC:          "program counter out of range (%#04x)",
	IllegalOpcode:  "illegal opcode (%#04x)",

	ROMFileCannotOpen:    "cannot open rom (%s)",
	ROMFileError:         "error reading rom file (%s)",
	ROMUnsupportedScheme: "unsupported url scheme (%s)",
	ROMHashMismatch:      "unexpected hash value for rom (want %s, got %s)",

	PrefsFileCannotOpen: "cannot open preferences file (%s)",
	PrefsFileError:      "error processing preferences file (%s)",
	PrefsUnknownQuirk:   "unrecognised quirk (%s)",

	UnsupportedGUIFeature: "unsupported gui feature: %v",

	VMError: "%v",
}
