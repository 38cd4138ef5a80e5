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

// Package sdl is the primary GUI backend: an SDL2 window with a streaming
// texture for the 64x32 framebuffer, a square-wave SDL audio device for the
// beeper, and keyboard events translated into CHIP-8 keypad state over the
// standard QWERTY layout. Display implements chip.DisplaySink, chip.KeySource
// and gui.GUI; Audio implements chip.BeeperSink.
package sdl
