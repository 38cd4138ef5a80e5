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

// Package prefs provides live-updating preference values (Bool, Int,
// String, Float, Generic) and a Disk type that persists a flat set of them
// to a "key :: value" text file. The quirks configuration is the primary
// consumer: each chip.Quirks field is bound to a prefs.Bool so that a ROM's
// quirk requirements can be overridden from the command line and survive
// between runs.
package prefs
