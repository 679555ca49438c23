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

package playmode_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/emulation/nullcore"
	"github.com/gxplay/gxplay/performance/overclock"
	"github.com/gxplay/gxplay/playmode"
	"github.com/gxplay/gxplay/test"
	"github.com/gxplay/gxplay/userinput"
)

// the clock never sleeps. time advances by the amount requested
type fakeClock struct {
	now float64
}

func (clk *fakeClock) Now() float64 {
	return clk.now
}

func (clk *fakeClock) Sleep(ms float64) {
	clk.now += ms
}

// platform returns a scripted list of events for each poll. once the script
// has run out the window is closed
type fakePlatform struct {
	script    [][]userinput.Event
	polls     int
	presented int
	viewport  emulation.Rect
	resized   int

	// the layout after a resize. used by Viewport() when not empty
	window   emulation.Rect
	resizeTo emulation.Rect

	// called whenever the host state is read
	onHost func()
}

func (plt *fakePlatform) PollEvents() []userinput.Event {
	defer func() { plt.polls++ }()
	if plt.polls < len(plt.script) {
		return plt.script[plt.polls]
	}
	return []userinput.Event{userinput.EventQuit{}}
}

func (plt *fakePlatform) HostState() userinput.HostState {
	if plt.onHost != nil {
		plt.onHost()
	}
	return userinput.HostState{}
}

func (plt *fakePlatform) Present(frame emulation.Frame, viewport emulation.Rect, changed bool) error {
	plt.presented++
	plt.viewport = viewport
	return nil
}

func (plt *fakePlatform) Viewport() emulation.Rect {
	if !plt.window.Empty() {
		return plt.window
	}
	return plt.viewport
}

func (plt *fakePlatform) ToggleFullscreen() error {
	return nil
}

func (plt *fakePlatform) Resize() {
	plt.resized++
	plt.window = plt.resizeTo
}

func (plt *fakePlatform) SetTitle(_ string) {
}

type fakeAudio struct {
	closed bool
}

func (aud *fakeAudio) Close() error {
	aud.closed = true
	return nil
}

type fakeRecorder struct {
	samples int
	closed  bool
}

func (rec *fakeRecorder) Write(samples []int16) error {
	rec.samples += len(samples)
	return nil
}

func (rec *fakeRecorder) Close() error {
	rec.closed = true
	return nil
}

func key(name string) []userinput.Event {
	return []userinput.Event{userinput.EventKeyboard{Key: name, Down: true}}
}

// run all tests in a temporary directory with a local resource path
func setup(t *testing.T) *playmode.Preferences {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gxplay", 0o700))
	p, err := playmode.NewPreferences(filepath.Join(".gxplay", "preferences"))
	test.DemandSuccess(t, err)
	return p
}

func TestRunUntilQuit(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.NTSC, "quit")
	plt := &fakePlatform{script: make([][]userinput.Event, 10)}
	aud := &fakeAudio{}
	buffer := ring.NewDefault()

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, buffer, aud)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pm.State(), emulation.Initialising)

	rec := &fakeRecorder{}
	pm.SetRecorder(rec)

	test.DemandSuccess(t, pm.Run(context.Background()))
	test.ExpectEquality(t, pm.State(), emulation.Ending)
	test.ExpectEquality(t, pm.Frames(), 10)
	test.ExpectEquality(t, plt.presented, 10)
	test.ExpectEquality(t, core.Frames(), uint64(10))

	// the device and recorder are closed and the buffers released
	test.ExpectSuccess(t, aud.closed)
	test.ExpectSuccess(t, rec.closed)
	test.ExpectEquality(t, rec.samples, 10*2*ring.SampleFreq/60)
	test.ExpectEquality(t, buffer.Queued(), 0)

	// battery RAM is saved on exit
	_, err = os.Stat(filepath.Join(".gxplay", "saves", "quit.srm"))
	test.ExpectSuccess(t, err)
}

func TestCancelledContext(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.PAL, "cancel")
	plt := &fakePlatform{script: make([][]userinput.Event, 10)}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	test.DemandSuccess(t, pm.Run(ctx))
	test.ExpectEquality(t, pm.Frames(), 0)
	test.ExpectEquality(t, plt.polls, 0)
}

func TestSaveAndLoadState(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.NTSC, "state")
	plt := &fakePlatform{script: [][]userinput.Event{
		nil, nil, key("F8"), nil, nil, key("F7"),
	}}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pm.Run(context.Background()))

	// the state was saved after two frames and loaded after five. one more
	// frame was run after the load
	test.ExpectEquality(t, pm.Frames(), 6)
	test.ExpectEquality(t, core.Frames(), uint64(3))

	_, err = os.Stat(filepath.Join(".gxplay", "saves", "state.gp0"))
	test.ExpectSuccess(t, err)
}

func TestStateFilePerTitle(t *testing.T) {
	p := setup(t)

	for _, title := range []string{"first", "second"} {
		core := nullcore.NewNullCore(emulation.NTSC, title)
		plt := &fakePlatform{script: [][]userinput.Event{nil, key("F8")}}
		pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, pm.Run(context.Background()))
	}

	// a save by the second title does not replace the first
	_, err := os.Stat(filepath.Join(".gxplay", "saves", "first.gp0"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(".gxplay", "saves", "second.gp0"))
	test.ExpectSuccess(t, err)
}

func TestResizeBeforeSample(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.NTSC, "resize")
	window := emulation.Rect{X: 10, Y: 20, W: 30, H: 40}
	plt := &fakePlatform{
		script: [][]userinput.Event{
			nil,
			{userinput.EventWindowResize{W: 100, H: 100}},
			nil,
		},
		resizeTo: window,
	}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)

	var sampled []emulation.Rect
	plt.onHost = func() {
		sampled = append(sampled, pm.Mux().Viewport())
	}

	test.DemandSuccess(t, pm.Run(context.Background()))

	// nothing has been presented for the first frame. the frame after the
	// resize samples with the new layout
	test.DemandEquality(t, len(sampled), 3)
	test.ExpectEquality(t, sampled[0], emulation.Rect{})
	test.ExpectEquality(t, sampled[1], window)
	test.ExpectEquality(t, sampled[2], window)
}

func TestLoadMissingState(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.NTSC, "missing")
	plt := &fakePlatform{script: [][]userinput.Event{nil, key("F7"), nil}}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)

	// a missing state file is not fatal
	test.DemandSuccess(t, pm.Run(context.Background()))
	test.ExpectEquality(t, core.Frames(), uint64(3))
}

func TestOverclockWarmUp(t *testing.T) {
	p := setup(t)
	test.DemandSuccess(t, p.OverclockM68K.Set(2.0))
	test.DemandSuccess(t, p.OverclockDelay.Set(3))

	core := nullcore.NewNullCore(emulation.NTSC, "overclock")
	plt := &fakePlatform{script: make([][]userinput.Event, 3)}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pm.Run(context.Background()))

	// the first three frames are not overclocked
	test.ExpectEquality(t, core.Ratio(overclock.M68K), 1.0)
	test.ExpectEquality(t, core.Ratio(overclock.Z80), 1.0)

	plt = &fakePlatform{script: make([][]userinput.Event, 4)}
	core = nullcore.NewNullCore(emulation.NTSC, "overclock")
	pm, err = playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pm.Run(context.Background()))

	// the fourth frame is
	test.ExpectEquality(t, core.Ratio(overclock.M68K), 2.0)
	test.ExpectEquality(t, core.Ratio(overclock.Z80), 1.0)
}

func TestMinimised(t *testing.T) {
	p := setup(t)

	core := nullcore.NewNullCore(emulation.NTSC, "minimised")
	plt := &fakePlatform{script: [][]userinput.Event{
		nil,
		{userinput.EventWindowVisible{Visible: false}},
		nil,
		nil,
		{userinput.EventWindowVisible{Visible: true}},
		nil,
	}}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pm.Run(context.Background()))

	// no frames while minimised
	test.ExpectEquality(t, pm.Frames(), 3)
	test.ExpectEquality(t, plt.presented, 3)
}

func TestHotkeys(t *testing.T) {
	p := setup(t)
	test.DemandSuccess(t, p.Ports.Set("pad6,mouse"))
	test.DemandSuccess(t, p.InvertMouse.Set(false))

	core := nullcore.NewNullCore(emulation.NTSC, "hotkeys")
	plt := &fakePlatform{script: [][]userinput.Event{
		nil,
		key("F12"),
		{userinput.EventWindowResize{W: 100, H: 100}},
		nil,
		key("Tab"),
		key("Escape"),
		nil,
		nil,
	}}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)

	m, ok := pm.Mux().Device(1).(*userinput.MouseDevice)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.FlipY, false)

	test.DemandSuccess(t, pm.Run(context.Background()))

	// escape ends the loop before the frame is run
	test.ExpectEquality(t, pm.Frames(), 5)
	test.ExpectEquality(t, plt.polls, 6)
	test.ExpectEquality(t, plt.resized, 1)
	test.ExpectEquality(t, pm.Mux().Active(), 1)

	// the reset cleared the frame count
	test.ExpectEquality(t, core.Frames(), uint64(1))
}

func TestPreferences(t *testing.T) {
	p := setup(t)

	test.ExpectEquality(t, p.PacingMode.Get().(string), playmode.PacingClock)
	test.ExpectFailure(t, p.PacingMode.Set("vsync"))
	test.ExpectSuccess(t, p.PacingMode.Set(playmode.PacingTimer))

	test.ExpectFailure(t, p.AudioBackend.Set("alsa"))
	test.ExpectFailure(t, p.OverclockZ80.Set(0.5))
	test.ExpectFailure(t, p.Ports.Set("pad6,joystick"))

	test.DemandSuccess(t, p.Save())
	p, err := playmode.NewPreferences(filepath.Join(".gxplay", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.PacingMode.Get().(string), playmode.PacingTimer)
	test.ExpectEquality(t, p.OverclockDelay.Get().(int), overclock.DefaultDelay)
}

func TestTimerPacing(t *testing.T) {
	p := setup(t)
	test.DemandSuccess(t, p.PacingMode.Set(playmode.PacingTimer))

	core := nullcore.NewNullCore(emulation.NTSC, "timer")
	plt := &fakePlatform{script: make([][]userinput.Event, 5)}

	pm, err := playmode.NewPlaymode(core, plt, p, &fakeClock{}, ring.NewDefault(), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pm.Run(context.Background()))
	test.ExpectEquality(t, pm.Frames(), 5)
}
