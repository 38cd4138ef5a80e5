package errors_test

import (
	"testing"

	"gochip8/errors"
)

func TestError(t *testing.T) {
	e := errors.New(errors.BadPC, 0x1000)
	got := e.Error()
	want := "program counter out of range (0x1000)"
	if got != want {
		t.Errorf("unexpected error message: got %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	e := errors.New(errors.StackOverflow, 16)
	if !errors.Is(e, errors.StackOverflow) {
		t.Error("expected Is(e, StackOverflow) to be true")
	}
	if errors.Is(e, errors.StackUnderflow) {
		t.Error("expected Is(e, StackUnderflow) to be false")
	}
	if errors.Is(nil, errors.StackOverflow) {
		t.Error("expected Is(nil, ...) to be false")
	}
}
