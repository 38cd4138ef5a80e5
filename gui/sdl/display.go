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
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"gochip8/errors"
	"gochip8/gui"
	"gochip8/hardware/chip"
)

const pixelDepth = 4

// DefaultScale is used when NewDisplay is given a scale of zero or less.
const DefaultScale = 10

// Display is a window, renderer and streaming texture sized to a
// configurable integer multiple of the 64x32 framebuffer. It implements
// chip.DisplaySink (Present), chip.KeySource (KeyDown/AnyPressed) and
// gui.GUI (SetFeature/GetFeature).
type Display struct {
	window   *sdl2.Window
	renderer *sdl2.Renderer
	texture  *sdl2.Texture

	pixels []byte
	scale  int

	keys [chip.NumKeys]bool

	events chan gui.Event
}

// NewDisplay creates the SDL window, renderer and texture and initialises
// the SDL video/audio subsystems. scale is the integer pixel multiplier
// applied to the 64x32 framebuffer; zero or less selects DefaultScale.
func NewDisplay(scale int) (*Display, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	if err := sdl2.Init(sdl2.INIT_VIDEO | sdl2.INIT_AUDIO); err != nil {
		return nil, errors.New(errors.VMError, err)
	}

	d := &Display{
		scale:  scale,
		events: make(chan gui.Event, 16),
	}

	var err error

	d.window, err = sdl2.CreateWindow("gochip8",
		sdl2.WINDOWPOS_UNDEFINED, sdl2.WINDOWPOS_UNDEFINED,
		int32(chip.DisplayWidth*scale), int32(chip.DisplayHeight*scale),
		sdl2.WINDOW_SHOWN)
	if err != nil {
		return nil, errors.New(errors.VMError, err)
	}

	d.renderer, err = sdl2.CreateRenderer(d.window, -1, sdl2.RENDERER_ACCELERATED)
	if err != nil {
		return nil, errors.New(errors.VMError, err)
	}

	d.texture, err = d.renderer.CreateTexture(uint32(sdl2.PIXELFORMAT_ABGR8888),
		sdl2.TEXTUREACCESS_STREAMING, int32(chip.DisplayWidth), int32(chip.DisplayHeight))
	if err != nil {
		return nil, errors.New(errors.VMError, err)
	}

	d.pixels = make([]byte, chip.DisplayWidth*chip.DisplayHeight*pixelDepth)

	return d, nil
}

// Present implements chip.DisplaySink. It is called by the host driver loop
// whenever DrawFlag has edged high.
func (d *Display) Present(display *[chip.DisplayHeight][chip.DisplayWidth]bool) {
	for y := 0; y < chip.DisplayHeight; y++ {
		for x := 0; x < chip.DisplayWidth; x++ {
			i := (y*chip.DisplayWidth + x) * pixelDepth
			var v byte
			if display[y][x] {
				v = 255
			}
			d.pixels[i] = v
			d.pixels[i+1] = v
			d.pixels[i+2] = v
			d.pixels[i+3] = 255
		}
	}

	d.texture.Update(nil, d.pixels, chip.DisplayWidth*pixelDepth)
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()
}

// PollEvents drains pending SDL events, updating the keypad snapshot and
// pushing window-close notifications onto Events(). The PLAY mode loop
// calls this once per iteration; it must not run concurrently with
// KeyDown/AnyPressed on the same Display.
func (d *Display) PollEvents() {
	for {
		ev := sdl2.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *sdl2.QuitEvent:
			d.events <- gui.Event{ID: gui.EventWindowClose}
		case *sdl2.KeyboardEvent:
			idx, ok := keycodeToChip8[e.Keysym.Sym]
			if !ok {
				continue
			}
			down := e.Type == sdl2.KEYDOWN
			d.keys[idx] = down
			d.events <- gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{
				Key:  sdl2.GetKeyName(e.Keysym.Sym),
				Down: down,
			}}
		}
	}
}

// Events returns the channel PollEvents publishes window/keyboard events
// to.
func (d *Display) Events() <-chan gui.Event {
	return d.events
}

// KeyDown implements chip.KeySource.
func (d *Display) KeyDown(i uint8) bool {
	if i >= chip.NumKeys {
		return false
	}
	return d.keys[i]
}

// AnyPressed implements chip.KeySource.
func (d *Display) AnyPressed() (uint8, bool) {
	for i := uint8(0); i < chip.NumKeys; i++ {
		if d.keys[i] {
			return i, true
		}
	}
	return 0, false
}

// SetFeature implements gui.GUI.
func (d *Display) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		visible, ok := boolArg(args)
		if !ok {
			return errors.New(errors.UnsupportedGUIFeature, request)
		}
		if visible {
			d.window.Show()
		} else {
			d.window.Hide()
		}

	case gui.ReqFullScreen:
		full, ok := boolArg(args)
		if !ok {
			return errors.New(errors.UnsupportedGUIFeature, request)
		}
		if full {
			d.window.SetFullscreen(uint32(sdl2.WINDOW_FULLSCREEN_DESKTOP))
		} else {
			d.window.SetFullscreen(0)
		}

	case gui.ReqSetScale:
		scale, ok := args[0].(int)
		if !ok {
			return errors.New(errors.UnsupportedGUIFeature, request)
		}
		d.scale = scale
		d.window.SetSize(int32(chip.DisplayWidth*scale), int32(chip.DisplayHeight*scale))

	case gui.ReqState:
		// no visual effect; accepted so the PLAY loop can notify
		// unconditionally without checking backend capabilities.

	default:
		return errors.New(errors.UnsupportedGUIFeature, request)
	}

	return nil
}

// SetFeatureNoError implements gui.GUI.
func (d *Display) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = d.SetFeature(request, args...)
}

// GetFeature implements gui.GUI.
func (d *Display) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqSetScale:
		return d.scale, nil
	default:
		return nil, errors.New(errors.UnsupportedGUIFeature, request)
	}
}

// Close releases the window, renderer and texture.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
}

func boolArg(args []gui.FeatureReqData) (bool, bool) {
	if len(args) == 0 {
		return false, false
	}
	v, ok := args[0].(bool)
	return v, ok
}
