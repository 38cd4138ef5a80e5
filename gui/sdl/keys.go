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

import sdl2 "github.com/veandco/go-sdl2/sdl"

// keycodeToChip8 maps the standard QWERTY layout used by almost every
// CHIP-8 emulator onto the hex keypad:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keycodeToChip8 = map[sdl2.Keycode]uint8{
	sdl2.K_1: 0x1, sdl2.K_2: 0x2, sdl2.K_3: 0x3, sdl2.K_4: 0xC,
	sdl2.K_q: 0x4, sdl2.K_w: 0x5, sdl2.K_e: 0x6, sdl2.K_r: 0xD,
	sdl2.K_a: 0x7, sdl2.K_s: 0x8, sdl2.K_d: 0x9, sdl2.K_f: 0xE,
	sdl2.K_z: 0xA, sdl2.K_x: 0x0, sdl2.K_c: 0xB, sdl2.K_v: 0xF,
}
