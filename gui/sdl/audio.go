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

package sdl

import (
	"time"

	sdl2 "github.com/veandco/go-sdl2/sdl"

	"gochip8/errors"
)

const (
	audioSampleFreq   = 22050
	audioBufferLength = 512
	beepFreq          = 440
)

// Audio is a streaming SDL audio device that plays a square wave while
// beeping is true and silence otherwise. It implements chip.BeeperSink.
type Audio struct {
	id   sdl2.AudioDeviceID
	spec sdl2.AudioSpec

	beeping bool
	phase   int

	stop chan struct{}
}

// NewAudio opens a mono 8-bit SDL audio device and starts the streaming
// goroutine that keeps it fed.
func NewAudio() (*Audio, error) {
	a := &Audio{stop: make(chan struct{})}

	want := sdl2.AudioSpec{
		Freq:     audioSampleFreq,
		Format:   sdl2.AUDIO_U8,
		Channels: 1,
		Samples:  audioBufferLength,
	}

	id, got, err := sdl2.OpenAudioDevice("", false, &want, nil, 0)
	if err != nil {
		return nil, errors.New(errors.VMError, err)
	}
	a.id = id
	a.spec = got

	sdl2.PauseAudioDevice(a.id, false)

	go a.stream()

	return a, nil
}

// stream runs on its own goroutine, queuing a buffer's worth of samples
// roughly every time the device will have consumed the last one.
func (a *Audio) stream() {
	period := time.Duration(float64(audioBufferLength)/float64(audioSampleFreq)*1000) * time.Millisecond
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	buf := make([]byte, audioBufferLength)

	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			half := audioSampleFreq / beepFreq / 2
			for i := range buf {
				if a.beeping {
					if (a.phase/half)%2 == 0 {
						buf[i] = 192
					} else {
						buf[i] = 64
					}
					a.phase++
				} else {
					a.phase = 0
					buf[i] = 127
				}
			}
			sdl2.QueueAudio(a.id, buf)
		}
	}
}

// SetBeeping implements chip.BeeperSink.
func (a *Audio) SetBeeping(on bool) {
	a.beeping = on
}

// Close stops the streaming goroutine and closes the device.
func (a *Audio) Close() {
	close(a.stop)
	sdl2.CloseAudioDevice(a.id)
}
