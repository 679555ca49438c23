// This file is part of gxplay.
//
// gxplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gxplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gxplay.  If not, see <https://www.gnu.org/licenses/>.

// Package display calculates where in the window the emulated frame is drawn.
//
// The source rectangle is the part of the frame that is copied. It is the
// visible viewport and an equal border either side, cropped to the size of
// the window. The destination rectangle is centred in the window and keeps
// the aspect ratio of the viewport. With integer scaling the height of the
// destination is a whole multiple of the nominal frame height.
package display

import "github.com/gxplay/gxplay/emulation"

// Nominal size of the visible frame. Used to size the window and as the unit
// of integer scaling.
const (
	NominalWidth  = 398
	NominalHeight = 224

	// the window is opened at this multiple of the nominal size
	WindowScale = 3
)

// Layout is the result of Calculate().
type Layout struct {
	Source      emulation.Rect
	Destination emulation.Rect
}

// Calculate the source and destination rectangles for the viewport of a frame
// being drawn in a window of the specified size.
func Calculate(viewport emulation.Rect, windowW, windowH int, integerScaling bool) Layout {
	var l Layout

	if viewport.Empty() || windowW <= 0 || windowH <= 0 {
		return l
	}

	// source includes the border around the viewport
	l.Source = emulation.Rect{
		W: viewport.W + 2*viewport.X,
		H: viewport.H + 2*viewport.Y,
	}
	if l.Source.W > windowW {
		l.Source.X = (l.Source.W - windowW) / 2
		l.Source.W = windowW
	}
	if l.Source.H > windowH {
		l.Source.Y = (l.Source.H - windowH) / 2
		l.Source.H = windowH
	}

	// destination fills the height of the window
	h := windowH
	if integerScaling && h >= NominalHeight {
		h = (h / NominalHeight) * NominalHeight
	}
	w := int(float64(viewport.W) / float64(viewport.H) * float64(h))

	l.Destination = emulation.Rect{
		X: int(float64(windowW)/2.0 - float64(w)/2.0),
		Y: int(float64(windowH)/2.0 - float64(h)/2.0),
		W: w,
		H: h,
	}

	return l
}

// ScaleQuality returns the SDL render scale quality hint for the scaling mode.
func ScaleQuality(integerScaling bool) string {
	if integerScaling {
		return "nearest"
	}
	return "linear"
}
