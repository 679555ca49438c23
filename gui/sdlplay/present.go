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

package sdlplay

import (
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/gui/display"
	"github.com/veandco/go-sdl2/sdl"
)

func sdlRect(r emulation.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// (re)create the streaming texture for frames of the specified size
func (scr *SDLPlay) createTexture(w, h int) error {
	if scr.texture != nil {
		scr.texture.Destroy()
		scr.texture = nil
	}

	// scale quality hint applies to textures created after it has been set
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, display.ScaleQuality(scr.prefs.IntegerScaling.Get().(bool)))

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.textureW = w
	scr.textureH = h

	return nil
}

// calculate the layout from the size of the renderer output, which on high
// DPI displays can be larger than the window
func (scr *SDLPlay) calculateLayout() error {
	w, h, err := scr.renderer.GetOutputSize()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.layout = display.Calculate(scr.viewport, int(w), int(h), scr.prefs.IntegerScaling.Get().(bool))
	scr.relayout = false
	return nil
}

// Present the frame immediately. The viewport is the visible part of the
// frame and changed indicates that it differs from the previous frame.
func (scr *SDLPlay) Present(frame emulation.Frame, viewport emulation.Rect, changed bool) error {
	if !frame.Valid() {
		return curated.Errorf("sdlplay: invalid frame (%dx%d)", frame.Width, frame.Height)
	}

	if scr.texture == nil || frame.Width != scr.textureW || frame.Height != scr.textureH {
		err := scr.createTexture(frame.Width, frame.Height)
		if err != nil {
			return err
		}
		scr.relayout = true
	}

	if changed || viewport != scr.viewport {
		scr.viewport = viewport
		scr.relayout = true
	}

	if scr.relayout {
		err := scr.calculateLayout()
		if err != nil {
			return err
		}
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	rowBytes := frame.Width * emulation.BytesPerPixel
	for y := range frame.Height {
		copy(pixels[y*pitch:y*pitch+rowBytes], frame.Pixels[y*frame.Pitch:y*frame.Pitch+rowBytes])
	}
	scr.texture.Unlock()

	scr.renderer.SetDrawColor(0, 0, 0, 255)
	scr.renderer.Clear()

	err = scr.renderer.Copy(scr.texture, sdlRect(scr.layout.Source), sdlRect(scr.layout.Destination))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// Viewport returns the rectangle, in window coordinates, where the visible
// part of the frame is drawn. The mouse position in HostState is in the same
// coordinates. A pending resize is applied to the layout immediately.
func (scr *SDLPlay) Viewport() emulation.Rect {
	// a failed calculation leaves the previous layout in place
	if scr.relayout && scr.texture != nil {
		_ = scr.calculateLayout()
	}

	dst := scr.layout.Destination

	ww, wh := scr.window.GetSize()
	ow, oh, err := scr.renderer.GetOutputSize()
	if err != nil || ow == 0 || oh == 0 || (ww == ow && wh == oh) {
		return dst
	}

	return emulation.Rect{
		X: dst.X * int(ww) / int(ow),
		Y: dst.Y * int(wh) / int(oh),
		W: dst.W * int(ww) / int(ow),
		H: dst.H * int(wh) / int(oh),
	}
}
