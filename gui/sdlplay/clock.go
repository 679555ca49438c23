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

package sdlplay

import "github.com/veandco/go-sdl2/sdl"

// Clock implements the limiter.Clock interface with SDL's millisecond tick
// counter. Sleeps are rounded down to the whole millisecond.
type Clock struct{}

// Now implements the limiter.Clock interface.
func (Clock) Now() float64 {
	return float64(sdl.GetTicks())
}

// Sleep implements the limiter.Clock interface.
func (Clock) Sleep(ms float64) {
	if ms >= 1.0 {
		sdl.Delay(uint32(ms))
	}
}
