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

package playmode

import (
	"context"
	"fmt"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/logger"
	"github.com/gxplay/gxplay/performance/limiter"
	"github.com/gxplay/gxplay/performance/overclock"
	"github.com/gxplay/gxplay/performance/pacer"
	"github.com/gxplay/gxplay/userinput"
	"github.com/gxplay/gxplay/version"
)

// Platform is the window that frames are presented to and the source of
// events and host input. Implemented by sdlplay.SDLPlay.
type Platform interface {
	PollEvents() []userinput.Event
	HostState() userinput.HostState

	// present the frame immediately
	Present(frame emulation.Frame, viewport emulation.Rect, changed bool) error

	// where the viewport is drawn in the coordinates of HostState
	Viewport() emulation.Rect

	ToggleFullscreen() error
	Resize()
	SetTitle(title string)
}

// AudioDevice is the device pulling from the ring buffer. It is closed when
// the loop ends.
type AudioDevice interface {
	Close() error
}

// AudioRecorder receives a copy of the audio generated by each frame.
// Implemented by wavwriter.WavWriter.
type AudioRecorder interface {
	Write(samples []int16) error
	Close() error
}

// Playmode is the main loop of the emulation.
type Playmode struct {
	core     emulation.Core
	platform Platform
	prefs    *Preferences

	buffer   *ring.Buffer
	audio    AudioDevice
	recorder AudioRecorder

	mux       *userinput.Mux
	overclock *overclock.Overclock
	scheduler *limiter.Scheduler
	pacer     *pacer.Pacer

	// the pacing.mode preference at the time the loop started
	timerPacing bool

	state emulation.State

	// the viewport of the mux has to be updated after the next present
	relayout bool

	// files used for persisted state
	batteryPath string
	statePath   string

	// number of frames run by the loop
	frames int
}

// NewPlaymode is the preferred method of initialisation for the Playmode
// type. The audio device can be nil, in which case the audio is discarded.
func NewPlaymode(core emulation.Core, platform Platform, p *Preferences, clock limiter.Clock, buffer *ring.Buffer, audio AudioDevice) (*Playmode, error) {
	pm := &Playmode{
		core:     core,
		platform: platform,
		prefs:    p,
		buffer:   buffer,
		audio:    audio,
		state:    emulation.Initialising,
		relayout: true,
	}

	kinds, err := userinput.ParseBindings(p.Ports.Get().(string))
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	pm.mux, err = userinput.NewMux(kinds...)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	for i := range kinds {
		if m, ok := pm.mux.Device(i).(*userinput.MouseDevice); ok {
			m.FlipY = p.InvertMouse.Get().(bool)
		}
	}

	pm.overclock = overclock.NewOverclock(p.OverclockDelay.Get().(int))
	err = pm.overclock.SetRatio(overclock.M68K, p.OverclockM68K.Get().(float64))
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	err = pm.overclock.SetRatio(overclock.Z80, p.OverclockZ80.Get().(float64))
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	hz := core.Standard().RefreshRate()
	pm.scheduler = limiter.NewScheduler(clock, float64(hz))
	pm.pacer, err = pacer.NewPacer(hz)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}
	pm.timerPacing = p.PacingMode.Get().(string) == PacingTimer

	pm.batteryPath, pm.statePath, err = statePaths(core.Title())
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	return pm, nil
}

// SetRecorder attaches an AudioRecorder. Must be called before Run(). The
// recorder is closed when the loop ends.
func (pm *Playmode) SetRecorder(rec AudioRecorder) {
	pm.recorder = rec
}

// Mux returns the input multiplexer for the emulated ports.
func (pm *Playmode) Mux() *userinput.Mux {
	return pm.mux
}

// State returns the current state of the loop.
func (pm *Playmode) State() emulation.State {
	return pm.state
}

// Frames returns the number of frames run since the loop started.
func (pm *Playmode) Frames() int {
	return pm.frames
}

func (pm *Playmode) title(r pacer.Report) string {
	return fmt.Sprintf("%s - %s - %s", version.ApplicationName, pm.core.Title(), r)
}

// Run the loop until the quit hotkey is pressed, the window is closed or the
// context is cancelled. Exit requests are only checked between frames.
//
// On return the audio device has been closed, the pacer stopped and battery
// RAM saved.
func (pm *Playmode) Run(ctx context.Context) error {
	pm.start()
	defer pm.end()

	logger.Logf(logger.Allow, "playmode", "%s (%s) ports: %s", pm.core.Title(), pm.core.Standard(), pm.mux)

	for pm.state != emulation.Ending {
		select {
		case <-ctx.Done():
			pm.state = emulation.Ending
			continue
		case r := <-pm.pacer.Reports():
			pm.platform.SetTitle(pm.title(r))
		default:
		}

		for _, ev := range pm.platform.PollEvents() {
			pm.handleEvent(ev)
		}
		if pm.state == emulation.Ending {
			break
		}

		if pm.state == emulation.Running {
			err := pm.step()
			if err != nil {
				return err
			}
		}

		pm.wait(ctx)
	}

	return nil
}

func (pm *Playmode) start() {
	pm.loadBattery()
	pm.overclock.Arm()
	if pm.overclock.Enabled() {
		logger.Logf(logger.Allow, "playmode", "overclock delayed by %d frames", pm.prefs.OverclockDelay.Get().(int))
	}

	err := pm.pacer.Start(pm.core.Standard().RefreshRate())
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	pm.scheduler.Reset()
	pm.state = emulation.Running
}

// shutdown order is audio device, pacer and then the buffers
func (pm *Playmode) end() {
	pm.state = emulation.Ending

	if pm.audio != nil {
		err := pm.audio.Close()
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
	}

	pm.pacer.Stop()

	if pm.recorder != nil {
		err := pm.recorder.Close()
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
	}

	pm.saveBattery()
	pm.buffer.Clear()

	logger.Logf(logger.Allow, "playmode", "%d frames, %d stalls, audio %s", pm.frames, pm.scheduler.Stalls(), pm.buffer.Stats())
}

// run one frame of the emulation and present it
func (pm *Playmode) step() error {
	for _, r := range pm.overclock.Frame() {
		pm.core.SetCycleRatio(r.Processor, r.Ratio)
	}

	// a relayout requested by an event is applied before sampling. the layout
	// of the first frame, and of a viewport changed by the core, is only known
	// after presenting so the pointer lags by one frame in those cases
	if pm.relayout && pm.frames > 0 {
		pm.mux.SetViewport(pm.platform.Viewport())
		pm.relayout = false
	}

	ports := pm.mux.Sample(pm.platform.HostState())
	frame, samples := pm.core.StepFrame(ports)

	viewport, changed := pm.core.Viewport()
	err := pm.platform.Present(frame, viewport, changed)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	pm.pacer.Rendered()

	if changed || pm.relayout {
		pm.mux.SetViewport(pm.platform.Viewport())
		pm.relayout = false
	}

	pm.buffer.PushSamples(samples)
	if pm.recorder != nil {
		err := pm.recorder.Write(samples)
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
			pm.recorder.Close()
			pm.recorder = nil
		}
	}

	pm.frames++

	return nil
}

// wait until it is time for the next frame
func (pm *Playmode) wait(ctx context.Context) {
	if pm.timerPacing {
		select {
		case <-pm.pacer.Pulse():
		case <-ctx.Done():
		}
		return
	}
	pm.scheduler.Wait()
}
