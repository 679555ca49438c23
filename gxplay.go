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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gxplay/gxplay/audio/ring"
	"github.com/gxplay/gxplay/curated"
	"github.com/gxplay/gxplay/emulation"
	"github.com/gxplay/gxplay/emulation/nullcore"
	"github.com/gxplay/gxplay/gui/display"
	"github.com/gxplay/gxplay/gui/otoaudio"
	"github.com/gxplay/gxplay/gui/sdlaudio"
	"github.com/gxplay/gxplay/gui/sdlplay"
	"github.com/gxplay/gxplay/logger"
	"github.com/gxplay/gxplay/modalflag"
	"github.com/gxplay/gxplay/paths"
	"github.com/gxplay/gxplay/performance"
	"github.com/gxplay/gxplay/playmode"
	"github.com/gxplay/gxplay/prefs"
	"github.com/gxplay/gxplay/statsview"
	"github.com/gxplay/gxplay/version"
	"github.com/gxplay/gxplay/wavwriter"
)

// exit values
const (
	exitStartup = 10
	exitRuntime = 20
)

// errors returned by the mode functions that happen before the emulation has
// started
const startupFailure = "startup: %v"

// #mainthread
func main() {
	// SDL window creation and event handling must happen on the main thread
	runtime.LockOSThread()

	// an interrupt ends the emulation loop at the end of the current frame
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitVal := launch(ctx, os.Args[1:])
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	log := md.AddBool("log", false, "echo log to stderr")
	override := md.AddString("prefs", "", "override preferences for this session (key::value; key::value)")
	md.AddSubModes("PLAY", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitStartup
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	// command line preferences that were never used are likely to be typos
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("* unused preferences: %s\n", unused)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		if curated.Has(err, startupFailure) {
			return exitStartup
		}
		return exitRuntime
	}

	return 0
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	tv := md.AddString("tv", "NTSC", "television standard: NTSC, PAL")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	standard, err := emulation.ParseStandard(*tv)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}

	title := version.ApplicationName
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		title = md.GetArg(0)
	default:
		return curated.Errorf(startupFailure, fmt.Sprintf("too many arguments for %s mode", md))
	}

	prefsFile, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}
	displayPrefs, err := display.NewPreferences(prefsFile)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}
	playPrefs, err := playmode.NewPreferences(prefsFile)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}

	core := nullcore.NewNullCore(standard, title)

	scr, err := sdlplay.NewSDLPlay(fmt.Sprintf("%s - %s", version.ApplicationName, title), displayPrefs)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}
	defer scr.Destroy()

	buffer := ring.NewDefault()

	var aud playmode.AudioDevice
	if playPrefs.AudioEnabled.Get().(bool) {
		switch playPrefs.AudioBackend.Get().(string) {
		case playmode.AudioOto:
			a, err := otoaudio.NewAudio(buffer)
			if err != nil {
				return curated.Errorf(startupFailure, err)
			}
			aud = a
		default:
			a, err := sdlaudio.NewAudio(buffer)
			if err != nil {
				return curated.Errorf(startupFailure, err)
			}
			aud = a
		}
	}

	pm, err := playmode.NewPlaymode(core, scr, playPrefs, sdlplay.Clock{}, buffer, aud)
	if err != nil {
		if aud != nil {
			aud.Close()
		}
		return curated.Errorf(startupFailure, err)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			logger.Log(logger.Allow, "gxplay", err)
		} else {
			pm.SetRecorder(aw)
		}
	}

	if *stats {
		srv := statsview.Launch(os.Stdout, "")
		defer srv.Stop()
	}

	err = pm.Run(ctx)
	if err != nil {
		return err
	}

	err = displayPrefs.Save()
	if err != nil {
		return err
	}
	return playPrefs.Save()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	tv := md.AddString("tv", "NTSC", "television standard: NTSC, PAL")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run the emulation without a frame rate limit")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	standard, err := emulation.ParseStandard(*tv)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(startupFailure, err)
	}

	core := nullcore.NewNullCore(standard, version.ApplicationName)

	return performance.Check(os.Stdout, prf, core, *uncapped, *duration)
}
