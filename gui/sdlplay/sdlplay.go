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

// Package sdlplay is the SDL window used in play mode. It presents each frame
// from the emulation core, translates SDL events into userinput events and
// samples the state of the host keyboard and mouse.
//
// All functions must be called from the main thread.
package sdlplay

import (
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/gui/display"
	"github.com/gxplay/gxplay/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLPlay is the SDL window, renderer and streaming texture.
type SDLPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of texture. the texture is recreated if the size of the frame
	// changes
	textureW int
	textureH int

	prefs *display.Preferences

	// the viewport of the most recent frame and where it is drawn
	viewport emulation.Rect
	layout   display.Layout

	// the layout has to be recalculated before the next present
	relayout bool

	fullscreen bool
}

// NewSDLPlay is the preferred method of initialisation for the SDLPlay type.
// The SDL video, audio and timer subsystems are initialised.
func NewSDLPlay(title string, prefs *display.Preferences) (*SDLPlay, error) {
	scr := &SDLPlay{
		prefs:    prefs,
		relayout: true,
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_TIMER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		display.NominalWidth*display.WindowScale, display.NominalHeight*display.WindowScale,
		uint32(sdl.WINDOW_ALLOW_HIGHDPI)|uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// nothing is drawn until the core has produced a frame
	scr.renderer.SetDrawColor(0, 0, 0, 255)
	scr.renderer.Clear()
	scr.renderer.Present()

	if prefs.Fullscreen.Get().(bool) {
		err = scr.SetFullscreen(true)
		if err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	}

	return scr, nil
}

// Destroy the window and shutdown SDL.
func (scr *SDLPlay) Destroy() {
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// SetTitle changes the title of the window.
func (scr *SDLPlay) SetTitle(title string) {
	scr.window.SetTitle(title)
}

// SetFullscreen switches the window between fullscreen and windowed mode.
// Fullscreen takes the size of the desktop.
func (scr *SDLPlay) SetFullscreen(fullscreen bool) error {
	var flags uint32
	if fullscreen {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}

	err := scr.window.SetFullscreen(flags)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.fullscreen = fullscreen
	scr.relayout = true
	return nil
}

// ToggleFullscreen flips between fullscreen and windowed mode.
func (scr *SDLPlay) ToggleFullscreen() error {
	return scr.SetFullscreen(!scr.fullscreen)
}

// IsFullscreen returns true if the window is in fullscreen mode.
func (scr *SDLPlay) IsFullscreen() bool {
	return scr.fullscreen
}

// Resize should be called when the window size has changed. The layout is
// recalculated before the next frame is presented.
func (scr *SDLPlay) Resize() {
	scr.relayout = true
}
