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

// Package otoaudio plays the contents of a ring.Buffer with the oto library.
// It is an alternative to the sdlaudio package for hosts where the SDL audio
// subsystem is unsuitable. The oto player reads from the buffer on its own
// goroutine.
package otoaudio

import (
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/logger"
)

// how long to wait for the oto context to become ready
const readyTimeout = 5 * time.Second

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// player starts immediately. Only one Audio should be created by the program.
func NewAudio(buffer *ring.Buffer) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   ring.SampleFreq,
		ChannelCount: ring.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Second * ring.SamplesPerPeriod / ring.SampleFreq,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}

	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, curated.Errorf("otoaudio: context not ready")
	}

	aud := &Audio{
		ctx:    ctx,
		player: ctx.NewPlayer(ring.NewReader(buffer, ring.PeriodBytes)),
	}
	aud.player.SetBufferSize(ring.PeriodBytes)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "%dHz %d channels", ring.SampleFreq, ring.Channels)

	return aud, nil
}

// Close stops the player.
func (aud *Audio) Close() error {
	aud.player.Pause()
	err := aud.player.Close()
	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
