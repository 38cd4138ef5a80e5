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

// Package wavwriter allows recording of the CHIP-8 beeper to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety and
// written to disk when EndMixing is called. It is therefore probably only
// suitable for testing and short recordings.
package wavwriter

import (
	"os"

	"github.com/youpy/go-wav"

	"gochip8/errors"
	"gochip8/logger"
)

// SampleFreq is the sample rate, in Hz, that WAV files are rendered at.
const SampleFreq = 22050

// BeepFreq is the frequency, in Hz, of the square wave played while the
// beeper is sounding. CHIP-8 specifies no particular tone; this is a
// pleasant choice. Advance rounds the period down to a whole number of
// samples (50 at SampleFreq), so the rendered tone is 441Hz.
const BeepFreq = 440

// WavWriter implements chip.BeeperSink, rendering the boolean beeper signal
// as a square wave and buffering it in memory until EndMixing is called.
type WavWriter struct {
	filename string
	buffer   []wav.Sample

	beeping     bool
	samplePhase int
}

// New is the preferred method of initialisation for WavWriter.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetBeeping implements chip.BeeperSink. It is called by the host driver
// loop whenever State.Beeping() changes value.
func (aw *WavWriter) SetBeeping(on bool) {
	aw.beeping = on
}

// Advance appends n samples' worth of audio at the current beeper state to
// the buffer, at SampleFreq. The host driver loop calls this on its own
// schedule — the package has no notion of wall-clock time itself.
func (aw *WavWriter) Advance(n int) {
	period := SampleFreq / BeepFreq

	for i := 0; i < n; i++ {
		var level int

		if aw.beeping {
			if (aw.samplePhase/(period/2))%2 == 0 {
				level = 127
			} else {
				level = -127
			}
			aw.samplePhase++
		} else {
			aw.samplePhase = 0
		}

		w := wav.Sample{}
		w.Values[0] = level
		w.Values[1] = level
		aw.buffer = append(aw.buffer, w)
	}
}

// EndMixing writes the accumulated buffer to filename as a mono 8-bit WAV
// file and closes it.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return errors.New(errors.VMError, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && rerr == nil {
			rerr = errors.New(errors.VMError, cerr)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(SampleFreq), 8)
	if enc == nil {
		return errors.New(errors.VMError, "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	enc.WriteSamples(aw.buffer)

	return nil
}

// Reset discards any buffered audio and silences the beeper state.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.beeping = false
	aw.samplePhase = 0
}
