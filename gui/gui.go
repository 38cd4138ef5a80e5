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

// Package gui defines the feature-request contract a display/input/audio
// backend must satisfy to be driven by the PLAY mode loop. It does not
// implement any backend itself — see gui/sdl and gui/term for the two
// concrete implementations, both of which also implement the
// chip.DisplaySink, chip.KeySource and chip.BeeperSink ports directly.
package gui

// GUI defines the operations that can be performed on a visual frontend,
// orthogonal to its role as a chip.DisplaySink/KeySource/BeeperSink.
type GUI interface {
	// SetFeature sends a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// SetFeatureNoError is the same as SetFeature but does not wait for or
	// report the result. Useful in time-critical situations when the
	// caller is confident there will be no error worth handling.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// GetFeature returns the current state of a GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}
