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

package gui

// FeatureReq is used to request the setting of a gui attribute, e.g.
// toggling full-screen mode.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See the commentary on each FeatureReq value for the underlying type.
type FeatureReqData interface{}

// EmulationState tells the GUI what state the emulation loop is currently
// in, so that it can adjust presentation (e.g. dim the screen while
// paused).
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateEnding
)

// List of valid feature requests. The argument must be of the type noted
// against each constant, or the interface{} type conversion will fail and
// the frontend will return errors.UnsupportedGUIFeature.
const (
	// ReqState notifies the GUI of the current EmulationState.
	ReqState FeatureReq = "ReqState" // EmulationState

	// ReqSetVisibility shows or hides the GUI window. No effect on gui/term.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// ReqFullScreen puts the GUI output into full-screen mode (no window
	// border, content the size of the monitor). No effect on gui/term.
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// ReqSetScale changes the integer pixel scale the 64x32 framebuffer is
	// rendered at. No effect on gui/term.
	ReqSetScale FeatureReq = "ReqSetScale" // int
)
