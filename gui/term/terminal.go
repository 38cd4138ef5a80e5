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

package term

import (
	"fmt"
	"strings"
	"sync"
	"time"

	pkgterm "github.com/pkg/term"

	"gochip8/errors"
	"gochip8/gui"
	"gochip8/hardware/chip"
)

// keyHoldDuration is how long a key is reported as down after its last
// keypress. Terminals deliver no key-up event, so a key is treated as
// released once nothing has arrived for this long - long enough to survive
// OS key-repeat gaps, short enough that a held CHIP-8 action finishes
// promptly after the finger actually lifts.
const keyHoldDuration = 150 * time.Millisecond

// Terminal renders the 64x32 framebuffer as block characters in an ANSI
// terminal, positioned with cursor-movement escapes rather than clearing
// and redrawing the whole screen every frame. Keyboard input is read a
// byte at a time from a raw-mode tty.
type Terminal struct {
	tty *pkgterm.Term

	mu      sync.Mutex
	lastSet map[uint8]time.Time

	closeCh chan struct{}
}

// Open puts the controlling tty into raw mode and starts the background
// reader that feeds KeyDown/AnyPressed.
func Open() (*Terminal, error) {
	tty, err := pkgterm.Open("/dev/tty", pkgterm.RawMode)
	if err != nil {
		return nil, errors.New(errors.VMError, err)
	}

	t := &Terminal{
		tty:     tty,
		lastSet: make(map[uint8]time.Time),
		closeCh: make(chan struct{}),
	}

	fmt.Fprint(tty, "\x1b[2J\x1b[?25l")

	go t.readLoop()

	return t, nil
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := t.tty.Read(buf)
		if err != nil || n == 0 {
			select {
			case <-t.closeCh:
				return
			default:
				continue
			}
		}

		r := rune(buf[0])
		if idx, ok := runeToChip8[r]; ok {
			t.mu.Lock()
			t.lastSet[idx] = time.Now()
			t.mu.Unlock()
		}
	}
}

// KeyDown implements chip.KeySource.
func (t *Terminal) KeyDown(i uint8) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	last, ok := t.lastSet[i]
	if !ok {
		return false
	}
	return time.Since(last) < keyHoldDuration
}

// AnyPressed implements chip.KeySource.
func (t *Terminal) AnyPressed() (uint8, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := uint8(0); i < chip.NumKeys; i++ {
		if last, ok := t.lastSet[i]; ok && time.Since(last) < keyHoldDuration {
			return i, true
		}
	}
	return 0, false
}

// Present implements chip.DisplaySink. It repositions the cursor to the
// top-left corner and overwrites the framebuffer in place rather than
// clearing the screen, which would otherwise cause visible flicker.
func (t *Terminal) Present(display *[chip.DisplayHeight][chip.DisplayWidth]bool) {
	var b strings.Builder
	b.WriteString("\x1b[H")
	for y := 0; y < chip.DisplayHeight; y++ {
		for x := 0; x < chip.DisplayWidth; x++ {
			if display[y][x] {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\r\n")
	}
	fmt.Fprint(t.tty, b.String())
}

// SetBeeping implements chip.BeeperSink. It sounds the terminal bell each
// time it is called with on set to true and does nothing for false.
// hardware.VCS only calls it when the beeping state changes, so a held tone
// rings the bell once rather than on every instruction.
func (t *Terminal) SetBeeping(on bool) {
	if on {
		fmt.Fprint(t.tty, "\a")
	}
}

// SetFeature implements gui.GUI. Visibility, full-screen and scale have no
// meaning for a terminal, so those requests and ReqState are all accepted
// and ignored; any other request returns errors.UnsupportedGUIFeature.
func (t *Terminal) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqState, gui.ReqSetVisibility, gui.ReqFullScreen, gui.ReqSetScale:
		return nil
	default:
		return errors.New(errors.UnsupportedGUIFeature, request)
	}
}

// SetFeatureNoError implements gui.GUI.
func (t *Terminal) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = t.SetFeature(request, args...)
}

// GetFeature implements gui.GUI.
func (t *Terminal) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	return nil, errors.New(errors.UnsupportedGUIFeature, request)
}

// Close restores the tty's original mode and stops the reader goroutine.
func (t *Terminal) Close() {
	close(t.closeCh)
	fmt.Fprint(t.tty, "\x1b[?25h")
	t.tty.Restore()
	t.tty.Close()
}
