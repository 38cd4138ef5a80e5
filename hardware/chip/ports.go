package chip

// DisplaySink receives the framebuffer whenever the draw flag has edged
// high. It returns no value: the VM core does not care whether or when the
// frontend actually presents the frame.
type DisplaySink interface {
	Present(display *[DisplayHeight][DisplayWidth]bool)
}

// KeySource answers questions about the current keypad snapshot. The
// Executor only reads keypad state through it and never mutates it. Each
// implementation owns its snapshot: gui/sdl and gui/term keep their own,
// and KeysFromState reads State.Keys, which its caller writes directly and
// is responsible for synchronizing against the driver thread.
type KeySource interface {
	KeyDown(index uint8) bool

	// AnyPressed returns the lowest-numbered pressed key and true, or
	// (0, false) if no key is currently down.
	AnyPressed() (uint8, bool)
}

// RNGSource supplies random bytes to the RND instruction. A deterministic
// seeded implementation must be injectable so that ROM behaviour involving
// RND is reproducible in tests.
type RNGSource interface {
	NextU8() uint8
}

// BeeperSink observes the sound timer. The VM core does not call into it
// directly — callers poll State.SoundTimer — but the type is declared here
// because it completes the set of capability-boundary ports a frontend must
// implement to drive a State headlessly.
type BeeperSink interface {
	SetBeeping(on bool)
}

// Ports bundles the two ports the Executor actually calls into. KeySource
// is consulted by Ex9E/ExA1/Fx0A; RNGSource by Cxkk. DisplaySink is notified
// by the driver loop (not the Executor itself) whenever DrawFlag is set —
// see hardware.VCS.Step.
type Ports struct {
	Keys KeySource
	RNG  RNGSource
}

// keySourceFromState adapts a State's own Keys array into a KeySource, for
// callers (tests, headless mode) that update State.Keys directly rather
// than routing through a frontend.
type keySourceFromState struct {
	s *State
}

// KeysFromState returns a KeySource backed directly by s.Keys.
func KeysFromState(s *State) KeySource {
	return keySourceFromState{s: s}
}

func (k keySourceFromState) KeyDown(index uint8) bool {
	if index >= NumKeys {
		return false
	}
	return k.s.Keys[index]
}

func (k keySourceFromState) AnyPressed() (uint8, bool) {
	for i := uint8(0); i < NumKeys; i++ {
		if k.s.Keys[i] {
			return i, true
		}
	}
	return 0, false
}
