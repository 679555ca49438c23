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

// Package sdlaudio plays the contents of a ring.Buffer through an SDL audio
// device. The device is serviced by a callback on SDL's audio thread and the
// callback does nothing other than pull one device period from the buffer.
//
// SDL_INIT_AUDIO must be included in the call to sdl.Init() before NewAudio()
// is called.
package sdlaudio

// typedef unsigned char Uint8;
// void gxplayAudioCallback(void *userdata, Uint8 *stream, int len);
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the buffer being played by the open device. the callback can not be given
// a Go pointer so it finds the buffer here
var playing atomic.Pointer[ring.Buffer]

//export gxplayAudioCallback
func gxplayAudioCallback(_ unsafe.Pointer, stream *C.Uint8, length C.int) {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(stream)), int(length))

	b := playing.Load()
	if b == nil {
		clear(buf)
		return
	}
	b.Pull(buf)
}

// DeviceBusy is returned by NewAudio() if an audio device is already open.
const DeviceBusy = "sdlaudio: device already open"

// Audio outputs sound using SDL
type Audio struct {
	id     sdl.AudioDeviceID
	spec   sdl.AudioSpec
	buffer *ring.Buffer
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// device starts playing immediately. Only one Audio can be open at a time.
func NewAudio(buffer *ring.Buffer) (*Audio, error) {
	if !playing.CompareAndSwap(nil, buffer) {
		return nil, curated.Errorf(DeviceBusy)
	}

	aud := &Audio{
		buffer: buffer,
	}

	spec := &sdl.AudioSpec{
		Freq:     ring.SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: ring.Channels,
		Samples:  ring.SamplesPerPeriod,
		Callback: sdl.AudioCallback(C.gxplayAudioCallback),
	}

	// allowed changes are zero so SDL converts to the device format if it
	// needs to
	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		playing.Store(nil)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "%dHz %d channels %d samples", aud.spec.Freq, aud.spec.Channels, aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Close stops and closes the audio device. The buffer is no longer pulled
// once Close() has returned.
func (aud *Audio) Close() error {
	sdl.PauseAudioDevice(aud.id, true)
	sdl.CloseAudioDevice(aud.id)
	playing.CompareAndSwap(aud.buffer, nil)
	return nil
}
