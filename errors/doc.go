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

// Package errors defines GochipError, a closed Errno-keyed error type used
// throughout the emulator. Every fault the VM core can raise — and every
// host-level error the CLI and its ports can raise — has a corresponding
// Errno value and a formatted message in the messages table, so that error
// identity can be tested with a switch on Errno rather than string matching.
package errors
