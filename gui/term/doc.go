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

// Package term is the fallback GUI backend: a raw-mode terminal rendering
// the 64x32 framebuffer as block characters repositioned with ANSI cursor
// escapes, reading the hex keypad from single keypresses via
// github.com/pkg/term, and beeping with the terminal bell. Terminal
// implements chip.DisplaySink, chip.KeySource, chip.BeeperSink and gui.GUI.
package term
