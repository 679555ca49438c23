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

// Package playmode runs the emulation without any debugging features. Each
// iteration of the loop handles pending events, samples the host input for
// the emulated ports, runs one frame of the core, presents the frame, queues
// the audio and then waits for the next frame.
//
// The audio device pulls from the ring buffer on its own thread. The pacer
// counts presented frames on its own goroutine and, in the timer pacing mode,
// provides the pulse that the loop waits for.
package playmode
