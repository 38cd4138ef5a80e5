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

// Package paths contains functions to prepare paths to gochip8 resources:
// preferences, recordings, and anything else the host wants to persist
// between runs.
//
// ResourcePath() modifies the supplied resource string such that it is
// prepended with the appropriate config directory. For example, the
// following returns the path to the preferences file:
//
//	d := paths.ResourcePath("prefs")
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".gochip8", is present in the program's current directory then that is
// used. Otherwise the user's config directory is used, via
// os.UserConfigDir() from the standard library.
package paths
