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

package userinput_test

import (
	"testing"

	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/test"
	"github.com/gxplay/gxplay/userinput"
)

var viewport = emulation.Rect{X: 40, Y: 16, W: 640, H: 448}

func device(t *testing.T, k userinput.Kind) userinput.Device {
	t.Helper()
	d, err := userinput.NewDevice(k)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, d.Kind(), k)
	return d
}

func TestPad(t *testing.T) {
	d := device(t, userinput.Pad6)

	var host userinput.HostState
	host.Keys[userinput.KeyA] = true
	host.Keys[userinput.KeyV] = true
	host.Keys[userinput.KeyUp] = true
	host.Keys[userinput.KeyDown] = true
	host.Keys[userinput.KeyRight] = true

	s := d.Sample(host, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonA))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonMode))

	// up has priority over down
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonUp))
	test.ExpectFailure(t, s.Pressed(emulation.ButtonDown))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonRight))

	// left has priority over right
	host.Keys[userinput.KeyLeft] = true
	s = d.Sample(host, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonLeft))
	test.ExpectFailure(t, s.Pressed(emulation.ButtonRight))

	// three button pad has no mode button
	d = device(t, userinput.Pad3)
	s = d.Sample(host, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonA))
	test.ExpectFailure(t, s.Pressed(emulation.ButtonMode))
}

func TestMouse(t *testing.T) {
	m := userinput.NewMouse()
	m.FlipY = false

	// pre-clamp values are scaled
	x, y := m.RelativeMotion(10, -5)
	test.ExpectEquality(t, x, 20)
	test.ExpectEquality(t, y, -10)

	// and clamped to the range of the axis
	s := m.Sample(userinput.HostState{RelX: 10, RelY: -5}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{20, 0})

	s = m.Sample(userinput.HostState{RelX: 200, RelY: 3}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{255, 6})

	// default mouse flips vertical motion
	m = userinput.NewMouse()
	x, y = m.RelativeMotion(10, -5)
	test.ExpectEquality(t, x, 20)
	test.ExpectEquality(t, y, 10)

	s = m.Sample(userinput.HostState{Mouse: userinput.MouseButtonLeft | userinput.MouseButtonMiddle}, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonB))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonA))
	test.ExpectFailure(t, s.Pressed(emulation.ButtonC))
}

func TestSportsPad(t *testing.T) {
	d := device(t, userinput.SportsPad)

	// negated motion as a two's complement byte
	s := d.Sample(userinput.HostState{RelX: 3, RelY: -4}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{0xfd, 0x04})

	s = d.Sample(userinput.HostState{Mouse: userinput.MouseButtonRight}, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonC))
}

func TestLightGun(t *testing.T) {
	d := device(t, userinput.LightGun)

	// centre of the viewport
	s := d.Sample(userinput.HostState{MouseX: 40 + 320, MouseY: 16 + 224}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{128, 128})

	// outside the viewport is clamped
	s = d.Sample(userinput.HostState{MouseX: 0, MouseY: 1000, Mouse: userinput.MouseButtonLeft}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{0, 255})
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonA))

	// position follows the viewport
	moved := emulation.Rect{X: 0, Y: 0, W: 640, H: 448}
	s = d.Sample(userinput.HostState{MouseX: 320, MouseY: 224}, moved)
	test.ExpectEquality(t, s.Axes, [2]uint8{128, 128})
}

func TestPaddle(t *testing.T) {
	d := device(t, userinput.Paddle)
	test.ExpectEquality(t, d.Neutral().Axes[0], uint8(128))

	s := d.Sample(userinput.HostState{MouseX: 40 + 160, Mouse: userinput.MouseButtonLeft}, viewport)
	test.ExpectEquality(t, s.Axes[0], uint8(64))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonB))

	s = d.Sample(userinput.HostState{MouseX: 40 + 640}, viewport)
	test.ExpectEquality(t, s.Axes[0], uint8(255))
}

func TestTablets(t *testing.T) {
	d := device(t, userinput.Terebi)
	s := d.Sample(userinput.HostState{MouseX: 40 + 640, MouseY: 16, Mouse: userinput.MouseButtonRight}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{250, 0})
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonB))

	d = device(t, userinput.GraphicBoard)
	s = d.Sample(userinput.HostState{MouseX: 40 + 640, MouseY: 16 + 448, Mouse: userinput.MouseButtonLeft}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{255, 255})
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonGraphicPen))
}

func TestActivator(t *testing.T) {
	d := device(t, userinput.Activator)

	var host userinput.HostState
	host.Keys[userinput.KeyG] = true
	host.Keys[userinput.KeyK] = true
	host.Keys[userinput.KeyF] = true

	s := d.Sample(host, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonActivator7L))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonActivator8U))
	test.ExpectFailure(t, s.Pressed(emulation.ButtonActivator7U))
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonStart))
}

func TestAnalogPad(t *testing.T) {
	d := device(t, userinput.XE1AP)

	var host userinput.HostState
	host.Keys[userinput.KeyLeft] = true
	host.Keys[userinput.KeyDown] = true

	s := d.Sample(host, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{126, 130})
	s = d.Sample(host, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{124, 132})

	// axes snap to the centre on release
	s = d.Sample(userinput.HostState{}, viewport)
	test.ExpectEquality(t, s.Axes, [2]uint8{128, 128})

	// and are clamped
	for range 100 {
		s = d.Sample(host, viewport)
	}
	test.ExpectEquality(t, s.Axes, [2]uint8{0, 255})

	host = userinput.HostState{}
	host.Keys[userinput.KeyA] = true
	s = d.Sample(host, viewport)
	test.ExpectSuccess(t, s.Pressed(emulation.ButtonStart))
}

func TestParseKind(t *testing.T) {
	k, err := userinput.ParseKind(" Pad6 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, userinput.Pad6)

	_, err = userinput.ParseKind("joystick")
	test.ExpectFailure(t, err)

	for k := userinput.None; k <= userinput.Activator; k++ {
		p, err := userinput.ParseKind(k.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, k)
	}
}
