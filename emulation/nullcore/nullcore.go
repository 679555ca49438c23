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

// Package nullcore is a deterministic emulation core with no emulated
// hardware. It draws scrolling colour bars and plays a sine tone. Button
// presses on any port change the colour of the bars and the pitch of the
// tone, and the first axis of the first port moves a marker, which makes it
// useful for checking the input devices.
//
// It exists so that the front end can be run and tested without a real core.
package nullcore

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/performance/overclock"
)

// Dimensions of the backing surface.
const (
	Width  = 320
	Height = 240
)

// size of the battery RAM.
const batterySize = 0x2000

// identifies serialised state.
const stateMagic = "GXNULL01"

// the visible area of the surface.
var viewport = emulation.Rect{X: 0, Y: 8, W: Width, H: 224}

var bars = [...]uint32{
	0xffc0c0c0, 0xffc0c000, 0xff00c0c0, 0xff00c000,
	0xffc000c0, 0xffc00000, 0xff0000c0, 0xff000000,
}

// NullCore implements the emulation.Core interface.
type NullCore struct {
	standard emulation.Standard
	title    string

	pixels []byte
	audio  []int16

	// generator state. saved and restored by SaveState() and LoadState()
	frame   uint64
	phase   float64
	scroll  float64
	ratios  [overclock.NumProcessors]float64
	battery []byte

	viewportSent bool
}

// NewNullCore is the preferred method of initialisation for the NullCore
// type.
func NewNullCore(standard emulation.Standard, title string) *NullCore {
	n := &NullCore{
		standard: standard,
		title:    title,
		pixels:   make([]byte, Width*Height*emulation.BytesPerPixel),
		audio:    make([]int16, 0, ring.SampleFreq/standard.RefreshRate()*ring.Channels),
		battery:  make([]byte, batterySize),
	}
	for i := range n.ratios {
		n.ratios[i] = 1.0
	}
	return n
}

// Title implements the emulation.Core interface.
func (n *NullCore) Title() string {
	return n.title
}

// Standard implements the emulation.Core interface.
func (n *NullCore) Standard() emulation.Standard {
	return n.standard
}

// Frames returns the number of frames since the last reset.
func (n *NullCore) Frames() uint64 {
	return n.frame
}

// Ratio returns the most recent cycle ratio for the processor.
func (n *NullCore) Ratio(p overclock.Processor) float64 {
	return n.ratios[p]
}

// SetCycleRatio implements the emulation.Core interface.
func (n *NullCore) SetCycleRatio(p overclock.Processor, ratio float64) {
	if p >= 0 && p < overclock.NumProcessors {
		n.ratios[p] = ratio
	}
}

// Viewport implements the emulation.Core interface.
func (n *NullCore) Viewport() (emulation.Rect, bool) {
	changed := !n.viewportSent
	n.viewportSent = true
	return viewport, changed
}

// Reset implements the emulation.Core interface.
func (n *NullCore) Reset() {
	n.frame = 0
	n.phase = 0
	n.scroll = 0
	n.viewportSent = false
}

// BatteryRAM implements the emulation.Core interface.
func (n *NullCore) BatteryRAM() []byte {
	return n.battery
}

// StepFrame implements the emulation.Core interface.
func (n *NullCore) StepFrame(ports []emulation.PortState) (emulation.Frame, []int16) {
	var buttons uint16
	marker := -1
	for i, p := range ports {
		buttons |= p.Buttons
		if i == 0 && p.Axes[0] > 0 {
			marker = int(p.Axes[0]) * Width / 256
		}
	}

	n.frame++
	n.scroll += n.ratios[overclock.M68K]

	// the battery records the frame count so that there is something to save
	binary.LittleEndian.PutUint64(n.battery, n.frame)

	n.draw(buttons, marker)
	n.tone(buttons)

	return emulation.Frame{
		Pixels: n.pixels,
		Width:  Width,
		Height: Height,
		Pitch:  Width * emulation.BytesPerPixel,
	}, n.audio
}

func (n *NullCore) draw(buttons uint16, marker int) {
	offset := int(n.scroll) % Width
	barWidth := Width / len(bars)

	for y := range Height {
		for x := range Width {
			var c uint32
			switch {
			case !viewport.Contains(x, y):
				c = 0xff000000
			case x == marker:
				c = 0xffffffff
			default:
				c = bars[((x+offset)/barWidth)%len(bars)] ^ (uint32(buttons) << 8)
			}
			binary.LittleEndian.PutUint32(n.pixels[(y*Width+x)*emulation.BytesPerPixel:], c|0xff000000)
		}
	}
}

func (n *NullCore) tone(buttons uint16) {
	const amplitude = 0x1000

	freq := 440.0 * n.ratios[overclock.Z80]
	for b := buttons; b != 0; b >>= 1 {
		if b&1 == 1 {
			freq *= 1.0594630943592953
		}
	}

	samples := ring.SampleFreq / n.standard.RefreshRate()
	step := 2 * math.Pi * freq / ring.SampleFreq

	n.audio = n.audio[:0]
	for range samples {
		v := int16(amplitude * math.Sin(n.phase))
		n.audio = append(n.audio, v, v)
		n.phase = math.Mod(n.phase+step, 2*math.Pi)
	}
}

// the serialised layout of the generator state.
type state struct {
	Magic  [8]byte
	Frame  uint64
	Phase  float64
	Scroll float64
	Ratios [overclock.NumProcessors]float64
}

// SaveState implements the emulation.Core interface.
func (n *NullCore) SaveState() ([]byte, error) {
	s := state{
		Frame:  n.frame,
		Phase:  n.phase,
		Scroll: n.scroll,
		Ratios: n.ratios,
	}
	copy(s.Magic[:], stateMagic)

	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, &s); err != nil {
		return nil, curated.Errorf("nullcore: %v", err)
	}
	return b.Bytes(), nil
}

// LoadState implements the emulation.Core interface.
func (n *NullCore) LoadState(data []byte) error {
	var s state
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &s); err != nil {
		return curated.Errorf("nullcore: %v", err)
	}
	if string(s.Magic[:]) != stateMagic {
		return curated.Errorf("nullcore: not a state file")
	}

	n.frame = s.Frame
	n.phase = s.Phase
	n.scroll = s.Scroll
	n.ratios = s.Ratios
	return nil
}
