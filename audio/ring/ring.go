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

import (
	"encoding/binary"
	"fmt"
	"sync"
)

// Device format details.
const (
	SampleFreq       = 48000
	Channels         = 2
	BytesPerSample   = 2
	SamplesPerPeriod = 2048

	// the number of bytes in a single device period
	PeriodBytes = SamplesPerPeriod * Channels * BytesPerSample

	// default capacity of the buffer measured in device periods
	DefaultPeriods = 20

	// DefaultCapacity is the capacity of the buffer returned by NewDefault().
	DefaultCapacity = PeriodBytes * DefaultPeriods
)

// when the queue holds backlogPeriods or more periods after a pull, whole
// periods are discarded until it holds fewer.
const backlogPeriods = 2

// Stats records the number of times the buffer has had to compensate for
// drift between the producer and the consumer.
type Stats struct {
	// number of pulls that were filled with silence
	Underruns int

	// bytes of backlogged audio discarded by Pull()
	Discarded int

	// bytes of unplayed audio discarded by Push() because the consumer has
	// stopped pulling
	Overflowed int
}

func (s Stats) String() string {
	return fmt.Sprintf("underruns=%d discarded=%d overflowed=%d", s.Underruns, s.Discarded, s.Overflowed)
}

// Buffer is a fixed capacity byte queue shared by exactly one producer and one
// consumer. The zero value is not usable, use New() or NewDefault().
type Buffer struct {
	crit   sync.Mutex
	data   []byte
	queued int
	stats  Stats

	// scratch space for PushSamples()
	encoded []byte
}

// New is the preferred method of initialisation for the Buffer type. Capacity
// is the size of the buffer in bytes and must be greater than zero.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("ring: illegal capacity (%d)", capacity))
	}
	return &Buffer{
		data: make([]byte, capacity),
	}
}

// NewDefault returns a Buffer with DefaultCapacity.
func NewDefault() *Buffer {
	return New(DefaultCapacity)
}

// Capacity returns the size of the buffer in bytes.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Queued returns the number of bytes waiting to be pulled.
func (b *Buffer) Queued() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.queued
}

// Stats returns a copy of the drift compensation counters.
func (b *Buffer) Stats() Stats {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.stats
}

// Clear discards all queued audio. The Stats are not reset.
func (b *Buffer) Clear() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.queued = 0
}

// Push appends data to the queue. Must only be called by the producer.
//
// It is a programming error to push more than Capacity() bytes in a single
// call and the function will panic if this happens. If the consumer has
// stopped pulling and there is not enough free space, the oldest queued bytes
// are discarded to make room.
func (b *Buffer) Push(data []byte) {
	if len(data) > len(b.data) {
		panic(fmt.Sprintf("ring: push of %d bytes exceeds capacity of %d bytes", len(data), len(b.data)))
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	if over := b.queued + len(data) - len(b.data); over > 0 {
		copy(b.data, b.data[over:b.queued])
		b.queued -= over
		b.stats.Overflowed += over
	}

	copy(b.data[b.queued:], data)
	b.queued += len(data)
}

// PushSamples encodes interleaved signed 16-bit samples as little-endian bytes
// and pushes them. Must only be called by the producer.
func (b *Buffer) PushSamples(samples []int16) {
	n := len(samples) * BytesPerSample
	if cap(b.encoded) < n {
		b.encoded = make([]byte, n)
	}
	b.encoded = b.encoded[:n]

	for i, s := range samples {
		binary.LittleEndian.PutUint16(b.encoded[i*BytesPerSample:], uint16(s))
	}

	b.Push(b.encoded)
}

// Pull fills dst with the oldest queued audio. Must only be called by the
// consumer. Pull never blocks for longer than the copy.
//
// If fewer than len(dst) bytes are queued then dst is filled with silence and
// the queue is left unchanged.
func (b *Buffer) Pull(dst []byte) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if len(dst) == 0 {
		return
	}

	if b.queued < len(dst) {
		clear(dst)
		b.stats.Underruns++
		return
	}

	end := b.queued
	copy(dst, b.data[:len(dst)])
	b.queued -= len(dst)

	// discard backlog one period at a time
	for b.queued >= backlogPeriods*len(dst) {
		b.queued -= len(dst)
		b.stats.Discarded += len(dst)
	}

	// the newest audio is kept
	copy(b.data, b.data[end-b.queued:end])
}
