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

// Package wavwriter allows writing of audio data to disk as a WAV file. Audio
// is written as it is received and the file is completed by Close().
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/logger"
)

// WavWriter writes interleaved stereo 16 bit samples to a WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buffer   *audio.IntBuffer

	// number of sample frames written
	frames int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, ring.SampleFreq, ring.BytesPerSample*8, ring.Channels, 1),
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: ring.Channels,
				SampleRate:  ring.SampleFreq,
			},
			SourceBitDepth: ring.BytesPerSample * 8,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// Write interleaved stereo samples to the file.
func (aw *WavWriter) Write(samples []int16) error {
	aw.buffer.Data = aw.buffer.Data[:0]
	for _, s := range samples {
		aw.buffer.Data = append(aw.buffer.Data, int(s))
	}

	err := aw.enc.Write(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.frames += len(samples) / ring.Channels

	return nil
}

// Frames returns the number of sample frames written so far.
func (aw *WavWriter) Frames() int {
	return aw.frames
}

// Close completes the WAV header and closes the file.
func (aw *WavWriter) Close() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	err := aw.enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d frames to %s", aw.frames, aw.filename)

	return nil
}
