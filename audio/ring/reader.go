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

package ring

// Reader adapts a Buffer to the io.Reader interface for audio devices that
// pull with a reader rather than a callback. The Buffer is always pulled in
// whole periods, however many bytes the device asks for, so that the backlog
// threshold is measured in device periods.
type Reader struct {
	buffer  *Buffer
	period  []byte
	pending []byte
}

// NewReader is the preferred method of initialisation for the Reader type.
// The period is the number of bytes pulled from the buffer at once and must be
// greater than zero.
func NewReader(buffer *Buffer, period int) *Reader {
	if period <= 0 {
		period = PeriodBytes
	}
	return &Reader{
		buffer: buffer,
		period: make([]byte, period),
	}
}

// Read implements the io.Reader interface. It always fills p and never
// returns an error. Silence is read when the buffer underruns.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) == 0 {
			r.buffer.Pull(r.period)
			r.pending = r.period
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}
