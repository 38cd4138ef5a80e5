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

// Package hardware is the host driver for the CHIP-8 emulation. VCS
// aggregates a chip.State and chip.Executor with pacing and presentation:
// it decides how many instructions to run per second, when to tick the
// 60Hz timers, and when to hand the framebuffer to a chip.DisplaySink.
package hardware
