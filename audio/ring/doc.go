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

// Package ring implements the audio queue between the emulation loop and the
// audio device.
//
// The emulation loop pushes the samples produced by each frame and the audio
// device pulls a fixed sized period whenever it needs more data. The two run
// on independent clocks so the queue will drift one way or the other over
// time.
//
// When the device asks for more than is queued the request is filled with
// silence. When the queue holds two or more periods after a pull, whole
// periods of the oldest audio are discarded until it holds less than two.
// This bounds the latency between the emulation and the speaker to two
// device periods at the cost of an occasional discontinuity.
//
// Audio data is signed 16-bit little-endian interleaved stereo. The Buffer
// itself is agnostic about the format except in the PushSamples() function.
package ring
