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

package emulation

// Frame is the video output of a single frame. Pixels are 32-bit ARGB values,
// stored as little-endian bytes (SDL's ARGB8888 layout on little-endian
// hosts). The Frame covers the whole backing surface of the core. The visible
// part is given by Core.Viewport().
type Frame struct {
	Pixels []byte
	Width  int
	Height int

	// number of bytes per row of pixels
	Pitch int
}

// BytesPerPixel is the size of each pixel in Frame.Pixels.
const BytesPerPixel = 4

// Valid returns true if the pixel data is large enough for the dimensions.
func (f Frame) Valid() bool {
	return f.Width > 0 && f.Height > 0 && f.Pitch >= f.Width*BytesPerPixel && len(f.Pixels) >= f.Pitch*f.Height
}
