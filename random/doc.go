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

// Package random should be used in preference to the math/rand package
// wherever a random number is required inside the emulation.
//
// Random numbers are seeded from a base value taken from the clock once per
// process plus the number of instructions executed so far, so within one
// process the sequence of Cxkk results follows the instruction count.
//
// If the same random numbers are required on every run regardless of
// process, set ZeroSeed to true. The seed is then the instruction count
// alone, so a recorded key-input script replayed against the same ROM
// reaches the same sequence of Cxkk results. This is useful for testing.
package random
